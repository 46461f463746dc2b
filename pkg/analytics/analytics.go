// Package analytics counts query words in tokenized documents and locates
// where they occur.
package analytics

// Document is an ordered, immutable sequence of cleaned tokens.
type Document struct {
	label  string
	tokens []string
}

// NewDocument copies tokens into a new Document.
func NewDocument(label string, tokens []string) *Document {
	t := make([]string, len(tokens))
	copy(t, tokens)
	return &Document{label: label, tokens: t}
}

// Label is the human-readable name used in output file names.
func (d *Document) Label() string {
	return d.label
}

// Len returns the number of tokens.
func (d *Document) Len() int {
	return len(d.tokens)
}

// Tokens returns a copy of the token sequence.
func (d *Document) Tokens() []string {
	out := make([]string, len(d.tokens))
	copy(out, d.tokens)
	return out
}

// Dispersion holds the matching coordinates found by Locate as two parallel
// slices: X is the token index and Y is the rank of the query word.
type Dispersion struct {
	X []int
	Y []int
}

// Len returns the number of points.
func (d Dispersion) Len() int {
	return len(d.X)
}

type Analytics struct{}

// Count returns, for each query word in order, the number of tokens in doc
// that equal it exactly. A repeated query word overwrites the earlier count.
// Query words are not case-folded.
func (a *Analytics) Count(doc *Document, words []string) *FrequencyMap {
	freq := NewFrequencyMap()
	for _, word := range words {
		count := 0
		for _, token := range doc.tokens {
			if token == word {
				count++
			}
		}
		freq.Set(word, count)
	}
	return freq
}

// Locate returns every (token index, query rank) pair where the token equals
// the query word, ordered by token index and then by rank. Repeated query
// words each get their own rank.
func (a *Analytics) Locate(doc *Document, words []string) Dispersion {
	d := Dispersion{X: []int{}, Y: []int{}}
	for x, token := range doc.tokens {
		for y, word := range words {
			if token == word {
				d.X = append(d.X, x)
				d.Y = append(d.Y, y)
			}
		}
	}
	return d
}
