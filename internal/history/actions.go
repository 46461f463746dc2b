package history

import (
	"fmt"

	"github.com/dtnitsch/wordstat/internal/common"
	"github.com/dtnitsch/wordstat/models"
	"github.com/dtnitsch/wordstat/pkg/analytics"
	"github.com/dtnitsch/wordstat/pkg/db"
	"github.com/urfave/cli/v2"
)

// RunSummary is one entry of the history listing.
type RunSummary struct {
	RunID     int64             `yaml:"run_id"`
	CreatedAt string            `yaml:"created_at"`
	Status    string            `yaml:"status"`
	Error     string            `yaml:"error,omitempty"`
	WordList  string            `yaml:"word_list"`
	OutputDir string            `yaml:"output_dir"`
	Lines     int               `yaml:"lines"`
	Images    int               `yaml:"images"`
	Documents []DocumentSummary `yaml:"documents,omitempty"`
}

// DocumentSummary lists a document and, for a single run, its word-cloud
// frequencies.
type DocumentSummary struct {
	Label       string                  `yaml:"label"`
	Tokens      int                     `yaml:"tokens"`
	Accumulated *analytics.FrequencyMap `yaml:"accumulated,omitempty"`
}

// HistoryAction lists past runs, or shows one run in detail with --run.
func HistoryAction(c *cli.Context) error {
	path, err := DatabasePath(c.String("db"), c.String("config"), c.IsSet("config"))
	if err != nil {
		return err
	}

	database, err := db.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	if c.IsSet("run") {
		summary, err := Describe(database, c.Int64("run"))
		if err != nil {
			return err
		}
		return common.PrintYAML(summary)
	}

	summaries, err := List(database, c.Int("limit"))
	if err != nil {
		return err
	}
	return common.PrintYAML(summaries)
}

// DatabasePath picks the history database: dbFlag when given, otherwise the
// config file's history_db. The config file may be absent unless configSet.
func DatabasePath(dbFlag, configPath string, configSet bool) (string, error) {
	if dbFlag != "" {
		return dbFlag, nil
	}

	cfg, err := models.LoadConfig(configPath, !configSet)
	if err != nil {
		return "", err
	}
	if cfg.HistoryDB == "" {
		return "", fmt.Errorf("%w: set history_db in %s or pass --db", db.ErrNoPath, configPath)
	}
	return cfg.HistoryDB, nil
}

// List returns the most recent runs.
func List(database *db.DB, limit int) ([]RunSummary, error) {
	runs, err := database.ListRuns(limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]RunSummary, 0, len(runs))
	for _, r := range runs {
		summaries = append(summaries, toSummary(r))
	}
	return summaries, nil
}

// Describe returns one run with its documents and accumulated frequencies.
func Describe(database *db.DB, runID int64) (*RunSummary, error) {
	run, err := database.GetRunByID(runID)
	if err != nil {
		return nil, err
	}
	summary := toSummary(*run)

	docs, err := database.GetRunDocuments(runID)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		acc, err := database.GetAccumulated(d.DocumentID)
		if err != nil {
			return nil, err
		}
		ds := DocumentSummary{Label: d.Label, Tokens: d.TokenCount}
		if acc.Len() > 0 {
			ds.Accumulated = acc
		}
		summary.Documents = append(summary.Documents, ds)
	}
	return &summary, nil
}

func toSummary(r db.Run) RunSummary {
	return RunSummary{
		RunID:     r.RunID,
		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
		Status:    r.Status,
		Error:     r.ErrorMessage,
		WordList:  r.WordList,
		OutputDir: r.OutputDir,
		Lines:     r.LineCount,
		Images:    r.ImageCount,
	}
}
