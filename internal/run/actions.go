package run

import (
	"fmt"
	"time"

	"github.com/dtnitsch/wordstat/internal/common"
	"github.com/dtnitsch/wordstat/models"
	"github.com/dtnitsch/wordstat/pkg/caching"
	"github.com/dtnitsch/wordstat/pkg/chart"
	"github.com/dtnitsch/wordstat/pkg/db"
	"github.com/dtnitsch/wordstat/pkg/loader"
	"github.com/dtnitsch/wordstat/pkg/stopwords"
	"github.com/dtnitsch/wordstat/pkg/storage"
	"github.com/dtnitsch/wordstat/pkg/wordcloud"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/plot/vg"
)

// RunAction runs the full analysis described by the config file.
func RunAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := models.LoadConfig(c.String("config"), !c.IsSet("config"))
	if err != nil {
		return err
	}
	applyFlags(c, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	store, err := storage.New(cfg.OutputDir, cfg.CreateOutputDir)
	if err != nil {
		return err
	}

	var cache *caching.Cache
	if cfg.CacheDir != "" {
		cache, err = caching.NewCache(cfg.CacheDir, time.Duration(cfg.CacheTTL))
		if err != nil {
			logger.Warn("Token cache disabled", "error", err)
			cache = nil
		}
	}

	var history *db.DB
	if cfg.HistoryDB != "" {
		history, err = db.Open(cfg.HistoryDB)
		if err != nil {
			logger.Warn("Run history disabled", "path", cfg.HistoryDB, "error", err)
			history = nil
		} else {
			defer history.Close()
		}
	}

	p := &Pipeline{
		Config: cfg,
		Loader: loader.New(loader.Options{
			Language: stopwords.Language(cfg.Language),
			Cache:    cache,
			Logger:   logger,
		}),
		Storage: store,
		Charts: chart.New(chart.Options{
			Width:           vg.Length(cfg.Chart.WidthCM) * vg.Centimeter,
			Height:          vg.Length(cfg.Chart.HeightCM) * vg.Centimeter,
			WordLabel:       cfg.Chart.WordLabel,
			FrequencyLabel:  cfg.Chart.FrequencyLabel,
			DispersionLabel: cfg.Chart.DispersionLabel,
		}),
		Clouds: wordcloud.New(wordcloud.Options{
			MaskFile:    cfg.Mask,
			FontFile:    cfg.WordCloud.FontFile,
			Width:       cfg.WordCloud.Width,
			Height:      cfg.WordCloud.Height,
			FontMaxSize: cfg.WordCloud.FontMaxSize,
			FontMinSize: cfg.WordCloud.FontMinSize,
		}),
		History: history,
		Logger:  logger,
	}

	logger.Info("Starting run", "documents", len(cfg.Documents), "word_list", cfg.WordList, "output_dir", cfg.OutputDir)
	result, err := p.Run()
	if err != nil {
		return err
	}

	return common.PrintYAML(result)
}

func applyFlags(c *cli.Context, cfg *models.Config) {
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("words") {
		cfg.WordList = c.String("words")
	}
	if c.IsSet("mask") {
		cfg.Mask = c.String("mask")
	}
	if c.IsSet("language") {
		cfg.Language = c.String("language")
	}
	if c.IsSet("history-db") {
		cfg.HistoryDB = c.String("history-db")
	}
	if c.IsSet("cache-dir") {
		cfg.CacheDir = c.String("cache-dir")
	}
	if c.Bool("mkdir") {
		cfg.CreateOutputDir = true
	}
}
