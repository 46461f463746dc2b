package manifest

import "github.com/dtnitsch/wordstat/pkg/analytics"

// SummaryManifest describes everything a run produced so the images can be
// interpreted without re-running the analysis.
type SummaryManifest struct {
	GeneratedAt  string             `yaml:"generated_at"`
	RunID        int64              `yaml:"run_id,omitempty"`
	WordList     string             `yaml:"word_list"`
	Language     string             `yaml:"language"`
	SkippedLines []int              `yaml:"skipped_lines,omitempty"`
	Documents    []*DocumentSummary `yaml:"documents"`
}

// DocumentSummary holds per-document results.
type DocumentSummary struct {
	Label       string        `yaml:"label"`
	Path        string        `yaml:"path"`
	TokenCount  int           `yaml:"token_count"`
	WordCloud   *Image        `yaml:"word_cloud,omitempty"`
	TopKeywords []string      `yaml:"top_keywords,omitempty"`
	Lines       []LineSummary `yaml:"lines"`
}

// LineSummary holds the results for one word-list line of one document.
type LineSummary struct {
	Line             int                     `yaml:"line"`
	Frequencies      *analytics.FrequencyMap `yaml:"frequencies"`
	Matches          int                     `yaml:"matches"`
	DispersionPoints int                     `yaml:"dispersion_points"`
	BarChart         Image                   `yaml:"bar_chart"`
	DispersionChart  Image                   `yaml:"dispersion_chart"`
}

// Image is a rendered file in the output directory.
type Image struct {
	File      string `yaml:"file"`
	SizeBytes int64  `yaml:"size_bytes"`
}
