package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrOutputDirMissing is returned when the output directory does not exist
// and the caller did not ask for it to be created.
var ErrOutputDirMissing = errors.New("output directory does not exist")

type Storage struct {
	dir string
}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

// New returns a Storage rooted at dir. When create is false a missing
// directory is reported as ErrOutputDirMissing instead of surfacing later as
// a write failure.
func New(dir string, create bool) (*Storage, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return nil, fmt.Errorf("output path %q is not a directory", dir)
	case err == nil:
		return &Storage{dir: dir}, nil
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("error checking output directory %q: %w", dir, err)
	case !create:
		return nil, fmt.Errorf("%w: %q (create it or pass --mkdir)", ErrOutputDirMissing, dir)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory %q: %w", dir, err)
	}
	return &Storage{dir: dir}, nil
}

// Dir returns the output directory.
func (s *Storage) Dir() string {
	return s.dir
}

// Path returns the location of a named output file. Path separators in name
// are replaced so a label can never escape the output directory.
func (s *Storage) Path(name string) string {
	safe := strings.NewReplacer("/", "-", `\`, "-").Replace(name)
	return filepath.Join(s.dir, safe)
}

// ImagePath returns the PNG path for name.
func (s *Storage) ImagePath(name string) string {
	return s.Path(name + ".png")
}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	err := os.WriteFile(filePath, content, 0644)
	if err != nil {
		return fmt.Errorf("error saving file %q: %w", filePath, err)
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// HasFile reports whether a file is already present at fn.
func (s *Storage) HasFile(fn string) bool {
	return fileExists(fn)
}

// GetFileStats returns size and modification time of a written file.
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
