package count

import (
	"flag"
	"testing"

	"github.com/dtnitsch/wordstat/pkg/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func TestBuild(t *testing.T) {
	doc := analytics.NewDocument("doc.txt", []string{"paz", "justicia", "paz"})

	resp := Build(doc, []string{"paz", "justicia", "guerra"}, true)

	assert.Equal(t, 3, resp.Tokens)
	assert.Equal(t, []int{2, 1, 0}, resp.Frequencies.Values())
	assert.Equal(t, 3, resp.Matches)
	assert.Equal(t, map[string][]int{"paz": {0, 2}, "justicia": {1}}, resp.Positions)
}

func TestBuild_WithoutPositions(t *testing.T) {
	doc := analytics.NewDocument("doc.txt", []string{"paz"})

	resp := Build(doc, []string{"paz"}, false)

	assert.Nil(t, resp.Positions)
}

func TestBuild_RepeatedWordPositionsOnce(t *testing.T) {
	doc := analytics.NewDocument("doc.txt", []string{"paz", "x", "paz"})

	resp := Build(doc, []string{"paz", "paz"}, true)

	assert.Equal(t, map[string][]int{"paz": {0, 2}}, resp.Positions)
	assert.Equal(t, []string{"paz"}, resp.Frequencies.Keys())
	assert.Equal(t, 2, resp.Matches)
}

func TestCountAction_RejectsUnknownLanguage(t *testing.T) {
	set := flag.NewFlagSet("count", flag.ContinueOnError)
	set.Bool("quiet", true, "")
	set.String("doc", "doc.txt", "")
	set.String("words", "paz", "")
	set.String("language", "french", "")
	set.Bool("positions", false, "")
	c := cli.NewContext(cli.NewApp(), set, nil)

	err := CountAction(c)

	assert.ErrorContains(t, err, "unsupported language")
}
