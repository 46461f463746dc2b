package manifest

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dtnitsch/wordstat/pkg/storage"
	"gopkg.in/yaml.v3"
)

// FileName is the manifest's name inside the output directory.
const FileName = "summary.yaml"

// New starts a manifest stamped with the current time.
func New(wordList, language string) *SummaryManifest {
	return &SummaryManifest{
		GeneratedAt: time.Now().Format(time.RFC3339),
		WordList:    wordList,
		Language:    language,
	}
}

// Document returns the summary for label, adding it if needed.
func (m *SummaryManifest) Document(label, path string, tokenCount int) *DocumentSummary {
	for _, d := range m.Documents {
		if d.Label == label {
			return d
		}
	}
	d := &DocumentSummary{
		Label:      label,
		Path:       path,
		TokenCount: tokenCount,
	}
	m.Documents = append(m.Documents, d)
	return d
}

// ImageOf describes the rendered file at path.
func ImageOf(s *storage.Storage, path string) (Image, error) {
	stats, err := s.GetFileStats(path)
	if err != nil {
		return Image{}, fmt.Errorf("error describing image %q: %w", path, err)
	}
	return Image{File: filepath.Base(path), SizeBytes: stats.SizeBytes}, nil
}

// GenerateSummary writes the manifest into the storage directory and
// returns its path.
func GenerateSummary(m *SummaryManifest, s *storage.Storage) (string, error) {
	manifestData, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}

	manifestPath := s.Path(FileName)
	if err := s.SaveFile(manifestPath, manifestData); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}

	return manifestPath, nil
}
