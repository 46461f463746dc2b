package run

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dtnitsch/wordstat/models"
	"github.com/dtnitsch/wordstat/pkg/analytics"
	"github.com/dtnitsch/wordstat/pkg/chart"
	"github.com/dtnitsch/wordstat/pkg/db"
	"github.com/dtnitsch/wordstat/pkg/loader"
	"github.com/dtnitsch/wordstat/pkg/manifest"
	"github.com/dtnitsch/wordstat/pkg/mapreduce"
	"github.com/dtnitsch/wordstat/pkg/storage"
	"github.com/dtnitsch/wordstat/pkg/wordcloud"
	"github.com/dtnitsch/wordstat/pkg/wordlist"
)

// Chart kinds used in image names.
const (
	KindFrequency  = "Frecuencias"
	KindDispersion = "Dispersión"
	KindWordCloud  = "WordCloud"
)

// LineImageName is "{label} - {kind} - {line}".
func LineImageName(label, kind string, line int) string {
	return fmt.Sprintf("%s - %s - %d", label, kind, line)
}

// WordCloudName is "{label} - WordCloud".
func WordCloudName(label string) string {
	return fmt.Sprintf("%s - %s", label, KindWordCloud)
}

// Pipeline wires the components of one run together.
type Pipeline struct {
	Config    *models.Config
	Loader    *loader.Loader
	Storage   *storage.Storage
	Charts    *chart.Renderer
	Clouds    *wordcloud.Renderer
	History   *db.DB // optional
	Logger    *slog.Logger
	analytics *analytics.Analytics
}

// Result summarizes a finished run.
type Result struct {
	RunID        int64  `yaml:"run_id,omitempty"`
	Lines        int    `yaml:"lines"`
	SkippedLines []int  `yaml:"skipped_lines,omitempty"`
	Images       int    `yaml:"images"`
	Manifest     string `yaml:"manifest"`
	OutputDir    string `yaml:"output_dir"`
}

type loadedDocument struct {
	doc        *analytics.Document
	documentID int64
	acc        *mapreduce.Accumulator
	summary    *manifest.DocumentSummary
}

// Run executes the pipeline: load every document once, chart each word-list
// line per document, then render one word cloud per document from its
// accumulated frequencies.
func (p *Pipeline) Run() (*Result, error) {
	if p.Logger == nil {
		p.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	p.analytics = &analytics.Analytics{}
	cfg := p.Config

	result := &Result{OutputDir: p.Storage.Dir()}

	var runID int64
	if p.History != nil {
		id, err := p.History.CreateRun(cfg.WordList, p.Storage.Dir(), cfg.Language)
		if err != nil {
			p.Logger.Warn("Failed to record run, continuing without history", "error", err)
			p.History = nil
		} else {
			runID = id
			result.RunID = id
		}
	}

	err := p.run(result)

	if p.History != nil {
		if finishErr := p.History.FinishRun(runID, result.Lines, result.Images, err); finishErr != nil {
			p.Logger.Warn("Failed to finish run record", "run_id", runID, "error", finishErr)
		}
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Pipeline) run(result *Result) error {
	cfg := p.Config

	batches, err := wordlist.Read(cfg.WordList)
	if err != nil {
		return err
	}

	summary := manifest.New(cfg.WordList, cfg.Language)
	summary.RunID = result.RunID

	docs := make([]*loadedDocument, 0, len(cfg.Documents))
	for _, d := range cfg.Documents {
		doc, err := p.Loader.Load(d.Label, d.Path)
		if err != nil {
			return err
		}
		ld := &loadedDocument{
			doc:     doc,
			acc:     mapreduce.NewAccumulator(),
			summary: summary.Document(d.Label, d.Path, doc.Len()),
		}
		if p.History != nil {
			ld.documentID, err = p.History.InsertDocument(result.RunID, d.Label, d.Path, doc.Len())
			if err != nil {
				p.Logger.Warn("Failed to record document", "document", d.Label, "error", err)
			}
		}
		docs = append(docs, ld)
	}

	for _, batch := range batches {
		if batch.Empty() {
			p.Logger.Warn("Skipping blank word-list line", "line", batch.Line)
			result.SkippedLines = append(result.SkippedLines, batch.Line)
			continue
		}

		for _, ld := range docs {
			if err := p.processLine(ld, batch, result); err != nil {
				return err
			}
		}
		result.Lines++
	}
	summary.SkippedLines = result.SkippedLines

	for _, ld := range docs {
		if err := p.renderWordCloud(ld, result); err != nil {
			return err
		}
	}

	manifestPath, err := manifest.GenerateSummary(summary, p.Storage)
	if err != nil {
		return err
	}
	result.Manifest = manifestPath
	p.Logger.Info("Run complete", "lines", result.Lines, "images", result.Images, "manifest", manifestPath)

	return nil
}

// processLine counts and locates one line's query words in one document,
// folds the counts into the document's accumulator and renders both charts.
func (p *Pipeline) processLine(ld *loadedDocument, batch wordlist.Batch, result *Result) error {
	label := ld.doc.Label()

	freq := p.analytics.Count(ld.doc, batch.Words)
	ld.acc.Update(freq)

	barName := LineImageName(label, KindFrequency, batch.Line)
	barPath := p.imagePath(barName)
	if err := p.Charts.Bar(freq, barName, barPath); err != nil {
		return err
	}
	barImage, err := manifest.ImageOf(p.Storage, barPath)
	if err != nil {
		return err
	}
	result.Images++

	points := p.analytics.Locate(ld.doc, batch.Words)
	dispName := LineImageName(label, KindDispersion, batch.Line)
	dispPath := p.imagePath(dispName)
	if err := p.Charts.Dispersion(points, batch.Words, ld.doc.Len(), dispName, dispPath); err != nil {
		return err
	}
	dispImage, err := manifest.ImageOf(p.Storage, dispPath)
	if err != nil {
		return err
	}
	result.Images++

	p.Logger.Info("Charted line", "document", label, "line", batch.Line,
		"words", len(batch.Words), "matches", points.Len())

	if p.History != nil && ld.documentID != 0 {
		if err := p.History.RecordLineFrequencies(ld.documentID, batch.Line, freq); err != nil {
			p.Logger.Warn("Failed to record line frequencies", "document", label, "line", batch.Line, "error", err)
		}
	}

	ld.summary.Lines = append(ld.summary.Lines, manifest.LineSummary{
		Line:             batch.Line,
		Frequencies:      freq,
		Matches:          freq.Total(),
		DispersionPoints: points.Len(),
		BarChart:         barImage,
		DispersionChart:  dispImage,
	})
	return nil
}

// imagePath returns where name is rendered. Existing images are overwritten.
func (p *Pipeline) imagePath(name string) string {
	path := p.Storage.ImagePath(name)
	if p.Storage.HasFile(path) {
		p.Logger.Info("Overwriting existing image", "path", path)
	}
	return path
}

func (p *Pipeline) renderWordCloud(ld *loadedDocument, result *Result) error {
	label := ld.doc.Label()
	total := ld.acc.Snapshot()

	if total.Len() == 0 {
		p.Logger.Warn("No query words for word cloud, skipping", "document", label)
		return nil
	}

	path := p.imagePath(WordCloudName(label))
	if err := p.Clouds.Render(total, path); err != nil {
		return err
	}
	image, err := manifest.ImageOf(p.Storage, path)
	if err != nil {
		return err
	}
	result.Images++

	ld.summary.WordCloud = &image
	ld.summary.TopKeywords = ld.acc.TopKeywords(10)
	p.Logger.Info("Rendered word cloud", "document", label, "words", total.Len(), "path", path)

	if p.History != nil && ld.documentID != 0 {
		if err := p.History.RecordAccumulated(ld.documentID, total); err != nil {
			p.Logger.Warn("Failed to record accumulated frequencies", "document", label, "error", err)
		}
	}
	return nil
}
