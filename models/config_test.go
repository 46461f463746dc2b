package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), DefaultConfigFile), true)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "imágenes", cfg.OutputDir)
	assert.Len(t, cfg.Documents, 2)
}

func TestLoadConfig_MissingFileIsErrorWhenRequired(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "custom.yaml"), false)

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordstat.yaml")
	content := `
documents:
  - label: Acta
    path: acta.html
word_list: lista.txt
output_dir: out
language: auto
cache_ttl: 90m
chart:
  frequency_label: Frecuencia
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path, false)
	require.NoError(t, err)

	assert.Equal(t, []Document{{Label: "Acta", Path: "acta.html"}}, cfg.Documents)
	assert.Equal(t, "lista.txt", cfg.WordList)
	assert.Equal(t, "auto", cfg.Language)
	assert.Equal(t, Duration(90*time.Minute), cfg.CacheTTL)
	assert.Equal(t, "Frecuencia", cfg.Chart.FrequencyLabel)
	assert.Equal(t, "word", cfg.Chart.WordLabel)
	assert.Equal(t, "mapa.jpg", cfg.Mask)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no documents", func(c *Config) { c.Documents = nil }},
		{"duplicate label", func(c *Config) { c.Documents[1].Label = c.Documents[0].Label }},
		{"missing path", func(c *Config) { c.Documents[0].Path = "" }},
		{"no word list", func(c *Config) { c.WordList = "" }},
		{"no output dir", func(c *Config) { c.OutputDir = "" }},
		{"bad language", func(c *Config) { c.Language = "klingon" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidateLanguage(t *testing.T) {
	for _, lang := range []string{"spanish", "english", "auto"} {
		assert.NoError(t, ValidateLanguage(lang), lang)
	}
	assert.Error(t, ValidateLanguage("french"))
	assert.Error(t, ValidateLanguage(""))
}
