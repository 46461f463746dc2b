// Package loader turns document files into cleaned token sequences.
package loader

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dtnitsch/wordstat/pkg/analytics"
	"github.com/dtnitsch/wordstat/pkg/caching"
	"github.com/dtnitsch/wordstat/pkg/stopwords"
)

// Options configures a Loader.
type Options struct {
	// Language selects the stopword list: spanish, english or auto.
	Language stopwords.Language
	// Cache stores cleaned token sequences between runs. Optional.
	Cache  *caching.Cache
	Logger *slog.Logger
}

// Loader reads documents and tokenizes them.
type Loader struct {
	opts     Options
	detector *languageDetector
}

// New creates a Loader. An empty Language means Spanish.
func New(opts Options) *Loader {
	if opts.Language == "" {
		opts.Language = stopwords.Spanish
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Loader{opts: opts}
}

// Load reads the file at path and returns its tokens as a Document.
func (l *Loader) Load(label, path string) (*analytics.Document, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	key := caching.Key(string(data), string(l.opts.Language))
	if l.opts.Cache != nil {
		if tokens, ok := l.opts.Cache.GetTokens(key); ok {
			l.opts.Logger.Info("Loaded tokens from cache", "document", label, "tokens", len(tokens))
			return analytics.NewDocument(label, tokens), nil
		}
	}

	text := string(data)
	if isHTML(path) {
		text, err = htmlText(path, data)
		if err != nil {
			return nil, err
		}
	}

	tokens := l.tokenize(label, text)
	l.opts.Logger.Info("Loaded document", "document", label, "path", path, "tokens", len(tokens))

	if l.opts.Cache != nil {
		if err := l.opts.Cache.SetTokens(key, tokens); err != nil {
			l.opts.Logger.Warn("Failed to cache tokens", "document", label, "error", err)
		}
	}

	return analytics.NewDocument(label, tokens), nil
}

// LoadText tokenizes text that is already in memory.
func (l *Loader) LoadText(label, text string) *analytics.Document {
	return analytics.NewDocument(label, l.tokenize(label, text))
}

func (l *Loader) tokenize(label, text string) []string {
	cleaned := Clean(text)

	lang := l.opts.Language
	if lang == Auto {
		if l.detector == nil {
			l.detector = newLanguageDetector()
		}
		lang = l.detector.Detect(cleaned)
		l.opts.Logger.Info("Detected document language", "document", label, "language", lang)
	}

	return tokens(cleaned, stopwords.For(lang))
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %q: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %q: %w", path, err)
	}
	return data, nil
}
