package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCount_Scenario(t *testing.T) {
	a := &Analytics{}
	doc := NewDocument("test", []string{"paz", "justicia", "paz"})

	freq := a.Count(doc, []string{"paz", "justicia"})

	assert.Equal(t, []string{"paz", "justicia"}, freq.Keys())
	assert.Equal(t, map[string]int{"paz": 2, "justicia": 1}, freq.ToMap())
}

func TestCount_MatchesBruteForce(t *testing.T) {
	a := &Analytics{}
	tokens := []string{"ley", "estado", "ley", "nación", "libertad", "ley", "nación"}
	words := []string{"ley", "nación", "ausente", "libertad"}
	doc := NewDocument("test", tokens)

	freq := a.Count(doc, words)

	for _, w := range words {
		want := 0
		for _, tok := range tokens {
			if tok == w {
				want++
			}
		}
		got, ok := freq.Get(w)
		require.True(t, ok, "missing %q", w)
		assert.GreaterOrEqual(t, got, 0)
		assert.Equal(t, want, got, "count for %q", w)
	}
}

func TestCount_CaseSensitive(t *testing.T) {
	a := &Analytics{}
	doc := NewDocument("test", []string{"paz"})

	freq := a.Count(doc, []string{"Paz"})

	got, _ := freq.Get("Paz")
	assert.Equal(t, 0, got)
}

func TestCount_DuplicateQueryWord(t *testing.T) {
	a := &Analytics{}
	doc := NewDocument("test", []string{"paz", "guerra"})

	freq := a.Count(doc, []string{"paz", "guerra", "paz"})

	assert.Equal(t, []string{"paz", "guerra"}, freq.Keys())
	assert.Equal(t, []int{1, 1}, freq.Values())
}

func TestLocate_Scenario(t *testing.T) {
	a := &Analytics{}
	doc := NewDocument("test", []string{"paz", "justicia", "paz"})

	d := a.Locate(doc, []string{"paz", "justicia"})

	assert.Equal(t, []int{0, 1, 2}, d.X)
	assert.Equal(t, []int{0, 1, 0}, d.Y)
}

func TestLocate_PairCountEqualsOccurrences(t *testing.T) {
	a := &Analytics{}
	doc := NewDocument("test", []string{"a", "b", "a", "c", "b", "a"})
	words := []string{"a", "b", "z", "a"}

	d := a.Locate(doc, words)

	want := 0
	for _, w := range words {
		c, _ := a.Count(doc, []string{w}).Get(w)
		want += c
	}
	assert.Equal(t, want, d.Len())
	assert.Len(t, d.Y, d.Len())
}

func TestLocate_DuplicateWordsGetOwnRows(t *testing.T) {
	a := &Analytics{}
	doc := NewDocument("test", []string{"paz"})

	d := a.Locate(doc, []string{"paz", "paz"})

	assert.Equal(t, []int{0, 0}, d.X)
	assert.Equal(t, []int{0, 1}, d.Y)
}

func TestLocate_NoMatches(t *testing.T) {
	a := &Analytics{}
	doc := NewDocument("test", []string{"paz"})

	d := a.Locate(doc, []string{"guerra"})

	assert.Empty(t, d.X)
	assert.Empty(t, d.Y)
	assert.NotNil(t, d.X)
}

func TestDocument_IsImmutable(t *testing.T) {
	tokens := []string{"uno", "dos"}
	doc := NewDocument("test", tokens)
	tokens[0] = "cambiado"

	got := doc.Tokens()
	got[1] = "cambiado"

	assert.Equal(t, []string{"uno", "dos"}, doc.Tokens())
}

func TestFrequencyMap_SetKeepsPosition(t *testing.T) {
	f := NewFrequencyMap()
	f.Set("b", 1)
	f.Set("a", 2)
	f.Set("b", 5)
	f.Set("c", -3)

	assert.Equal(t, []string{"b", "a", "c"}, f.Keys())
	assert.Equal(t, []int{5, 2, 0}, f.Values())
	assert.Equal(t, 7, f.Total())
}

func TestFrequencyMap_YAMLKeepsOrder(t *testing.T) {
	f := NewFrequencyMap()
	f.Set("zeta", 3)
	f.Set("alfa", 1)

	out, err := yaml.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, "zeta: 3\nalfa: 1\n", string(out))

	back := NewFrequencyMap()
	require.NoError(t, yaml.Unmarshal(out, back))
	assert.Equal(t, f.Keys(), back.Keys())
	assert.Equal(t, f.Values(), back.Values())
}
