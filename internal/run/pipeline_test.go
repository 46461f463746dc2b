package run

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/wordstat/models"
	"github.com/dtnitsch/wordstat/pkg/chart"
	"github.com/dtnitsch/wordstat/pkg/db"
	"github.com/dtnitsch/wordstat/pkg/loader"
	"github.com/dtnitsch/wordstat/pkg/manifest"
	"github.com/dtnitsch/wordstat/pkg/stopwords"
	"github.com/dtnitsch/wordstat/pkg/storage"
	"github.com/dtnitsch/wordstat/pkg/wordcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fixture struct {
	dir    string
	cfg    *models.Config
	output string
}

func writeFixture(t *testing.T, words string) *fixture {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	mask := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			mask.Set(x, y, color.RGBA{A: 255})
		}
	}
	maskPath := filepath.Join(dir, "mapa.png")
	f, err := os.Create(maskPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, mask))
	require.NoError(t, f.Close())

	cfg := models.DefaultConfig()
	cfg.Documents = []models.Document{
		{Label: "Constitución 1886", Path: write("1886.txt", "La paz y la justicia.\nLa PAZ de la Nación.")},
		{Label: "Constitución 1991", Path: write("1991.txt", "Justicia, libertad y paz; la justicia social.")},
	}
	cfg.WordList = write("palabras.txt", words)
	cfg.Mask = maskPath
	cfg.OutputDir = filepath.Join(dir, "imágenes")
	cfg.WordCloud.Width = 200
	cfg.WordCloud.Height = 200
	cfg.WordCloud.FontMaxSize = 40
	cfg.WordCloud.FontMinSize = 8

	return &fixture{dir: dir, cfg: cfg, output: cfg.OutputDir}
}

func newPipeline(t *testing.T, cfg *models.Config, history *db.DB) *Pipeline {
	t.Helper()
	store, err := storage.New(cfg.OutputDir, true)
	require.NoError(t, err)

	return &Pipeline{
		Config:  cfg,
		Loader:  loader.New(loader.Options{Language: stopwords.Spanish}),
		Storage: store,
		Charts:  chart.New(chart.DefaultOptions()),
		Clouds: wordcloud.New(wordcloud.Options{
			MaskFile:    cfg.Mask,
			Width:       cfg.WordCloud.Width,
			Height:      cfg.WordCloud.Height,
			FontMaxSize: cfg.WordCloud.FontMaxSize,
			FontMinSize: cfg.WordCloud.FontMinSize,
		}),
		History: history,
	}
}

func TestLineImageName(t *testing.T) {
	assert.Equal(t, "Constitución 1886 - Frecuencias - 3", LineImageName("Constitución 1886", KindFrequency, 3))
	assert.Equal(t, "Constitución 1991 - WordCloud", WordCloudName("Constitución 1991"))
}

func TestPipeline_Run(t *testing.T) {
	fx := writeFixture(t, "paz justicia\n\nnación paz ausente\n")
	history, err := db.Open(filepath.Join(fx.dir, "history.db"))
	require.NoError(t, err)
	defer history.Close()

	result, err := newPipeline(t, fx.cfg, history).Run()
	require.NoError(t, err)

	assert.Equal(t, 2, result.Lines)
	assert.Equal(t, []int{2}, result.SkippedLines)
	assert.Equal(t, 2*2*2+2, result.Images)

	for _, name := range []string{
		"Constitución 1886 - Frecuencias - 1.png",
		"Constitución 1886 - Dispersión - 1.png",
		"Constitución 1991 - Frecuencias - 3.png",
		"Constitución 1991 - Dispersión - 3.png",
		"Constitución 1886 - WordCloud.png",
		"Constitución 1991 - WordCloud.png",
		manifest.FileName,
	} {
		assert.FileExists(t, filepath.Join(fx.output, name))
	}
	assert.NoFileExists(t, filepath.Join(fx.output, "Constitución 1886 - Frecuencias - 2.png"))

	data, err := os.ReadFile(result.Manifest)
	require.NoError(t, err)
	var m manifest.SummaryManifest
	require.NoError(t, yaml.Unmarshal(data, &m))
	require.Len(t, m.Documents, 2)

	doc1886 := m.Documents[0]
	assert.Equal(t, "Constitución 1886", doc1886.Label)
	require.Len(t, doc1886.Lines, 2)
	assert.Equal(t, map[string]int{"paz": 2, "justicia": 1}, doc1886.Lines[0].Frequencies.ToMap())
	assert.Equal(t, 3, doc1886.Lines[0].DispersionPoints)
	assert.Equal(t, 3, doc1886.Lines[0].Matches)
	assert.Equal(t, "Constitución 1886 - Frecuencias - 1.png", doc1886.Lines[0].BarChart.File)
	assert.Positive(t, doc1886.Lines[0].BarChart.SizeBytes)
	assert.Equal(t, "Constitución 1886 - Dispersión - 3.png", doc1886.Lines[1].DispersionChart.File)
	require.NotNil(t, doc1886.WordCloud)
	assert.Equal(t, "Constitución 1886 - WordCloud.png", doc1886.WordCloud.File)
	assert.Positive(t, doc1886.WordCloud.SizeBytes)

	// "paz" appears on both lines; the later line's count is the one kept.
	docs, err := history.GetRunDocuments(result.RunID)
	require.NoError(t, err)
	acc, err := history.GetAccumulated(docs[1].DocumentID)
	require.NoError(t, err)
	assert.Equal(t, []string{"paz", "justicia", "nación", "ausente"}, acc.Keys())
	assert.Equal(t, []int{1, 2, 0, 0}, acc.Values())

	run, err := history.GetRunByID(result.RunID)
	require.NoError(t, err)
	assert.Equal(t, db.StatusSuccess, run.Status)
	assert.Equal(t, result.Images, run.ImageCount)
}

func TestPipeline_MissingDocumentFailsRun(t *testing.T) {
	fx := writeFixture(t, "paz\n")
	fx.cfg.Documents[1].Path = filepath.Join(fx.dir, "no-existe.txt")
	history, err := db.Open(filepath.Join(fx.dir, "history.db"))
	require.NoError(t, err)
	defer history.Close()

	_, err = newPipeline(t, fx.cfg, history).Run()

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "no-existe.txt")

	runs, err := history.ListRuns(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, db.StatusFailed, runs[0].Status)
	assert.Contains(t, runs[0].ErrorMessage, "no-existe.txt")
}

func TestPipeline_RerunOverwritesImages(t *testing.T) {
	fx := writeFixture(t, "paz justicia\n")

	first, err := newPipeline(t, fx.cfg, nil).Run()
	require.NoError(t, err)
	second, err := newPipeline(t, fx.cfg, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, first.Images, second.Images)
	entries, err := os.ReadDir(fx.output)
	require.NoError(t, err)
	assert.Len(t, entries, first.Images+1)
}

func TestPipeline_AllLinesBlank(t *testing.T) {
	fx := writeFixture(t, "\n   \n")

	result, err := newPipeline(t, fx.cfg, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, 0, result.Lines)
	assert.Equal(t, 0, result.Images)
	assert.Equal(t, []int{1, 2}, result.SkippedLines)
	assert.NoFileExists(t, filepath.Join(fx.output, "Constitución 1886 - WordCloud.png"))
}
