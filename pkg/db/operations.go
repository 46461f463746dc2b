package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/wordstat/pkg/analytics"
)

// Run status values.
const (
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Run is one recorded pipeline invocation.
type Run struct {
	RunID        int64
	CreatedAt    time.Time
	FinishedAt   *time.Time
	WordList     string
	OutputDir    string
	Language     string
	LineCount    int
	ImageCount   int
	Status       string
	ErrorMessage string
}

// DocumentInfo is a document recorded for a run.
type DocumentInfo struct {
	DocumentID int64
	RunID      int64
	Label      string
	Path       string
	TokenCount int
}

// CreateRun inserts a new run in the running state and returns its run_id.
func (db *DB) CreateRun(wordList, outputDir, language string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (word_list, output_dir, language, status)
		VALUES (?, ?, ?, ?)
	`, wordList, outputDir, language, StatusRunning)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// FinishRun marks a run as finished. A non-nil runErr marks it failed.
func (db *DB) FinishRun(runID int64, lineCount, imageCount int, runErr error) error {
	status := StatusSuccess
	var message sql.NullString
	if runErr != nil {
		status = StatusFailed
		message = NewNullString(runErr.Error())
	}

	_, err := db.Exec(`
		UPDATE runs
		SET finished_at = CURRENT_TIMESTAMP, line_count = ?, image_count = ?, status = ?, error_message = ?
		WHERE run_id = ?
	`, lineCount, imageCount, status, message, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// InsertDocument records a loaded document for a run.
func (db *DB) InsertDocument(runID int64, label, path string, tokenCount int) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO documents (run_id, label, path, token_count)
		VALUES (?, ?, ?, ?)
	`, runID, label, path, tokenCount)
	if err != nil {
		return 0, fmt.Errorf("failed to insert document: %w", err)
	}

	documentID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get document ID: %w", err)
	}
	return documentID, nil
}

// RecordLineFrequencies stores the counts computed for one word-list line.
func (db *DB) RecordLineFrequencies(documentID int64, lineNumber int, freq *analytics.FrequencyMap) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	position := 0
	var insertErr error
	freq.Each(func(word string, count int) {
		if insertErr != nil {
			return
		}
		_, insertErr = tx.Exec(`
			INSERT INTO line_frequencies (document_id, line_number, position, word, count)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(document_id, line_number, word) DO UPDATE SET count = excluded.count
		`, documentID, lineNumber, position, word, count)
		position++
	})
	if insertErr != nil {
		return fmt.Errorf("failed to insert line frequency: %w", insertErr)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit line frequencies: %w", err)
	}
	return nil
}

// RecordAccumulated stores the accumulated mapping that fed a word cloud,
// replacing any earlier snapshot for the document.
func (db *DB) RecordAccumulated(documentID int64, freq *analytics.FrequencyMap) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM accumulated_frequencies WHERE document_id = ?", documentID); err != nil {
		return fmt.Errorf("failed to clear accumulated frequencies: %w", err)
	}

	position := 0
	var insertErr error
	freq.Each(func(word string, count int) {
		if insertErr != nil {
			return
		}
		_, insertErr = tx.Exec(`
			INSERT INTO accumulated_frequencies (document_id, position, word, count)
			VALUES (?, ?, ?, ?)
		`, documentID, position, word, count)
		position++
	})
	if insertErr != nil {
		return fmt.Errorf("failed to insert accumulated frequency: %w", insertErr)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit accumulated frequencies: %w", err)
	}
	return nil
}

// GetRunByID retrieves a run.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	row := db.QueryRow(`
		SELECT run_id, created_at, finished_at, word_list, output_dir, language,
		       line_count, image_count, status, error_message
		FROM runs
		WHERE run_id = ?
	`, runID)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// ListRuns retrieves runs ordered by most recent first
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, created_at, finished_at, word_list, output_dir, language,
		       line_count, image_count, status, error_message
		FROM runs
		ORDER BY run_id DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *r)
	}

	return runs, rows.Err()
}

// GetRunDocuments lists the documents of a run in insertion order.
func (db *DB) GetRunDocuments(runID int64) ([]DocumentInfo, error) {
	rows, err := db.Query(`
		SELECT document_id, run_id, label, path, token_count
		FROM documents
		WHERE run_id = ?
		ORDER BY document_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run documents: %w", err)
	}
	defer rows.Close()

	var docs []DocumentInfo
	for rows.Next() {
		var d DocumentInfo
		if err := rows.Scan(&d.DocumentID, &d.RunID, &d.Label, &d.Path, &d.TokenCount); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}

	return docs, rows.Err()
}

// GetLineFrequencies returns the counts stored for one line, in the order
// they were computed.
func (db *DB) GetLineFrequencies(documentID int64, lineNumber int) (*analytics.FrequencyMap, error) {
	return db.queryFrequencies(`
		SELECT word, count FROM line_frequencies
		WHERE document_id = ? AND line_number = ?
		ORDER BY position
	`, documentID, lineNumber)
}

// GetAccumulated returns the accumulated mapping stored for a document.
func (db *DB) GetAccumulated(documentID int64) (*analytics.FrequencyMap, error) {
	return db.queryFrequencies(`
		SELECT word, count FROM accumulated_frequencies
		WHERE document_id = ?
		ORDER BY position
	`, documentID)
}

func (db *DB) queryFrequencies(query string, args ...interface{}) (*analytics.FrequencyMap, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query frequencies: %w", err)
	}
	defer rows.Close()

	freq := analytics.NewFrequencyMap()
	for rows.Next() {
		var word string
		var count int
		if err := rows.Scan(&word, &count); err != nil {
			return nil, fmt.Errorf("failed to scan frequency: %w", err)
		}
		freq.Set(word, count)
	}

	return freq, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(s scanner) (*Run, error) {
	var r Run
	var finished sql.NullTime
	var message sql.NullString
	if err := s.Scan(&r.RunID, &r.CreatedAt, &finished, &r.WordList, &r.OutputDir, &r.Language,
		&r.LineCount, &r.ImageCount, &r.Status, &message); err != nil {
		return nil, err
	}
	if finished.Valid {
		t := finished.Time
		r.FinishedAt = &t
	}
	r.ErrorMessage = message.String
	return &r, nil
}

// NewNullString returns a valid sql.NullString unless s is empty.
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
