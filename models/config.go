// Package models defines the configuration shared by the commands.
package models

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read by `run` when --config is not given.
const DefaultConfigFile = "wordstat.yaml"

// Document names one input text and the label used in output file names.
type Document struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// ChartConfig controls bar and dispersion charts.
type ChartConfig struct {
	WidthCM         float64 `yaml:"width_cm"`
	HeightCM        float64 `yaml:"height_cm"`
	WordLabel       string  `yaml:"word_label"`
	FrequencyLabel  string  `yaml:"frequency_label"`
	DispersionLabel string  `yaml:"dispersion_label"`
}

// WordCloudConfig controls word-cloud images.
type WordCloudConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	FontFile    string `yaml:"font_file"`
	FontMaxSize int    `yaml:"font_max_size"`
	FontMinSize int    `yaml:"font_min_size"`
}

// Config holds runtime configuration for a run. Values come from the YAML
// file and may be overridden by CLI flags.
type Config struct {
	Documents       []Document      `yaml:"documents"`
	WordList        string          `yaml:"word_list"`
	Mask            string          `yaml:"mask"`
	OutputDir       string          `yaml:"output_dir"`
	Language        string          `yaml:"language"`
	CreateOutputDir bool            `yaml:"create_output_dir"`
	CacheDir        string          `yaml:"cache_dir"`
	CacheTTL        Duration        `yaml:"cache_ttl"`
	HistoryDB       string          `yaml:"history_db"`
	Chart           ChartConfig     `yaml:"chart"`
	WordCloud       WordCloudConfig `yaml:"wordcloud"`
}

// Duration reads YAML strings such as "24h".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// DefaultConfig reproduces the original two-constitution deployment.
func DefaultConfig() *Config {
	return &Config{
		Documents: []Document{
			{Label: "Constitución 1886", Path: "Constituciones/Constitución 1886.txt"},
			{Label: "Constitución 1991", Path: "Constituciones/Constitución 1991.txt"},
		},
		WordList:  "palabras.txt",
		Mask:      "mapa.jpg",
		OutputDir: "imágenes",
		Language:  "spanish",
		CacheTTL:  Duration(24 * time.Hour),
		Chart: ChartConfig{
			WidthCM:         16,
			HeightCM:        12,
			WordLabel:       "word",
			FrequencyLabel:  "frequency",
			DispersionLabel: "dispersion",
		},
		WordCloud: WordCloudConfig{
			Width:       1024,
			Height:      1024,
			FontMaxSize: 200,
			FontMinSize: 10,
		},
	}
}

// LoadConfig reads path over DefaultConfig. A missing file is not an error
// when allowMissing is set; the defaults are returned instead.
func LoadConfig(path string, allowMissing bool) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if len(c.Documents) == 0 {
		return errors.New("at least one document is required")
	}
	seen := make(map[string]struct{}, len(c.Documents))
	for i, d := range c.Documents {
		if d.Label == "" || d.Path == "" {
			return fmt.Errorf("document %d needs both label and path", i+1)
		}
		if _, dup := seen[d.Label]; dup {
			return fmt.Errorf("duplicate document label %q", d.Label)
		}
		seen[d.Label] = struct{}{}
	}
	if c.WordList == "" {
		return errors.New("word_list is required")
	}
	if c.OutputDir == "" {
		return errors.New("output_dir is required")
	}
	return ValidateLanguage(c.Language)
}

// ValidateLanguage accepts the stopword languages a loader understands.
func ValidateLanguage(lang string) error {
	switch lang {
	case "spanish", "english", "auto":
		return nil
	}
	return fmt.Errorf("unsupported language %q (spanish, english or auto)", lang)
}
