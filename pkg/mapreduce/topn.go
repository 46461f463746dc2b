package mapreduce

import (
	"fmt"
	"sort"

	"github.com/dtnitsch/wordstat/pkg/analytics"
)

// KeywordCount is one entry of a ranked keyword list.
type KeywordCount struct {
	Word  string `yaml:"word" json:"word"`
	Count int    `yaml:"count" json:"count"`
}

// Ranked returns up to n entries of freq sorted by count descending. Ties
// keep the mapping's insertion order. n <= 0 returns every entry.
func Ranked(freq *analytics.FrequencyMap, n int) []KeywordCount {
	ss := make([]KeywordCount, 0, freq.Len())
	freq.Each(func(word string, count int) {
		ss = append(ss, KeywordCount{Word: word, Count: count})
	})

	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].Count > ss[j].Count
	})

	if n > 0 && len(ss) > n {
		ss = ss[:n]
	}
	return ss
}

// TopKeywords returns the top N keywords formatted as "word:count"
// (e.g., "nación:118").
func TopKeywords(freq *analytics.FrequencyMap, n int) []string {
	ranked := Ranked(freq, n)
	keywords := make([]string, len(ranked))
	for i, kc := range ranked {
		keywords[i] = fmt.Sprintf("%s:%d", kc.Word, kc.Count)
	}
	return keywords
}

// TopKeywords on the accumulator ranks the accumulated mapping.
func (a *Accumulator) TopKeywords(n int) []string {
	return TopKeywords(a.total, n)
}
