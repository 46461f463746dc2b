package loader

import (
	"unicode/utf8"

	"github.com/dtnitsch/wordstat/pkg/stopwords"
	"github.com/pemistahl/lingua-go"
)

// Auto asks the loader to pick the stopword list from the document text.
const Auto stopwords.Language = "auto"

// detectSample bounds how much text is handed to the detector.
const detectSample = 8192

// languageDetector picks between the languages we have stopword lists for.
type languageDetector struct {
	detector lingua.LanguageDetector
}

func newLanguageDetector() *languageDetector {
	return &languageDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.Spanish, lingua.English).
			Build(),
	}
}

// Detect returns the stopword language for text, or Spanish when the
// detector cannot decide.
func (d *languageDetector) Detect(text string) stopwords.Language {
	sample := text
	if len(sample) > detectSample {
		end := detectSample
		for end > 0 && !utf8.RuneStart(sample[end]) {
			end--
		}
		sample = sample[:end]
	}

	lang, ok := d.detector.DetectLanguageOf(sample)
	if !ok {
		return stopwords.Spanish
	}
	switch lang {
	case lingua.English:
		return stopwords.English
	default:
		return stopwords.Spanish
	}
}
