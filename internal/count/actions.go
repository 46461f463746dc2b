package count

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/wordstat/internal/common"
	"github.com/dtnitsch/wordstat/models"
	"github.com/dtnitsch/wordstat/pkg/analytics"
	"github.com/dtnitsch/wordstat/pkg/loader"
	"github.com/dtnitsch/wordstat/pkg/stopwords"
	"github.com/urfave/cli/v2"
)

// Response is printed by the count command.
type Response struct {
	Document    string                  `yaml:"document"`
	Tokens      int                     `yaml:"tokens"`
	Frequencies *analytics.FrequencyMap `yaml:"frequencies"`
	Matches     int                     `yaml:"matches"`
	Positions   map[string][]int        `yaml:"positions,omitempty"`
}

// CountAction counts query words in a single document without rendering.
func CountAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	path := c.String("doc")
	if path == "" {
		return fmt.Errorf("no document provided via --doc flag")
	}
	words := strings.Fields(c.String("words"))
	if len(words) == 0 {
		return fmt.Errorf("no query words provided via --words flag")
	}

	lang := c.String("language")
	if err := models.ValidateLanguage(lang); err != nil {
		return err
	}

	l := loader.New(loader.Options{
		Language: stopwords.Language(lang),
		Logger:   logger,
	})
	doc, err := l.Load(path, path)
	if err != nil {
		return err
	}

	resp := Build(doc, words, c.Bool("positions"))
	return common.PrintYAML(resp)
}

// Build computes the count response for doc.
func Build(doc *analytics.Document, words []string, withPositions bool) *Response {
	a := &analytics.Analytics{}
	freq := a.Count(doc, words)
	resp := &Response{
		Document:    doc.Label(),
		Tokens:      doc.Len(),
		Frequencies: freq,
		Matches:     freq.Total(),
	}

	if withPositions {
		// A repeated query word is reported under its first rank only.
		first := make(map[string]int, len(words))
		for i, w := range words {
			if _, ok := first[w]; !ok {
				first[w] = i
			}
		}

		d := a.Locate(doc, words)
		resp.Positions = make(map[string][]int)
		for i := range d.X {
			w := words[d.Y[i]]
			if first[w] != d.Y[i] {
				continue
			}
			resp.Positions[w] = append(resp.Positions[w], d.X[i])
		}
	}
	return resp
}
