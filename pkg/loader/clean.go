package loader

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/wordstat/pkg/stopwords"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// disallowed matches everything outside the alphabet: ASCII letters, the
// Latin-1 letters ß-ÿ (minus ÷), their case partners, space, newline and
// carriage return. Case partners outside Latin-1 such as Ÿ are kept.
var disallowed = regexp.MustCompile(`(?i)[^a-zß-öø-ÿ \n\r]`)

// spacing collapses line breaks and runs of whitespace into one space.
var spacing = regexp.MustCompile(`[\n\r]+|\s\s+`)

// Clean normalizes raw text into a single line of allowed characters.
// Accents written as combining marks are composed first so they survive.
func Clean(text string) string {
	text = norm.NFC.String(text)
	text = disallowed.ReplaceAllString(text, "")
	return spacing.ReplaceAllString(text, " ")
}

// Tokenize cleans text, lowercases it and drops stopwords.
func Tokenize(text string, stops *stopwords.List) []string {
	return tokens(Clean(text), stops)
}

func tokens(cleaned string, stops *stopwords.List) []string {
	lower := cases.Lower(language.Spanish).String(cleaned)
	fields := strings.Fields(lower)

	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if stops.Contains(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// IsAllowedToken reports whether every rune of w belongs to the lowercase
// alphabet produced by Tokenize.
func IsAllowedToken(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'ß' && r <= 'ÿ' && r != '÷':
		case r == 'ſ':
		default:
			return false
		}
	}
	return true
}
