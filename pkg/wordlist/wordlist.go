// Package wordlist reads query-word files: one batch of whitespace-separated
// words per line.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Batch is the set of query words found on one line.
type Batch struct {
	// Line is the 1-based line number in the word list.
	Line  int
	Words []string
}

// Empty reports whether the line had no words.
func (b Batch) Empty() bool {
	return len(b.Words) == 0
}

// Read loads every line of the word list at path.
func Read(path string) ([]Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %q: %w", path, err)
	}
	defer f.Close()

	batches, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %q: %w", path, err)
	}
	return batches, nil
}

// Parse reads batches from r. Blank lines are kept as empty batches so line
// numbers stay aligned with the file.
func Parse(r io.Reader) ([]Batch, error) {
	var batches []Batch

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		batches = append(batches, Batch{
			Line:  line,
			Words: strings.Fields(strings.TrimPrefix(scanner.Text(), "\ufeff")),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return batches, nil
}
