package mapreduce

import "github.com/dtnitsch/wordstat/pkg/analytics"

// Accumulator merges the per-line frequency mappings of one document.
//
// Update follows "last write per key wins": when a word appears on more than
// one line, the most recent line's count replaces the earlier one. Counts
// are never summed. The word keeps the position where it was first seen.
type Accumulator struct {
	total *analytics.FrequencyMap
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{total: analytics.NewFrequencyMap()}
}

// Update merges freq into the accumulated mapping.
func (a *Accumulator) Update(freq *analytics.FrequencyMap) {
	freq.Each(func(word string, count int) {
		a.total.Set(word, count)
	})
}

// Len returns the number of distinct words seen so far.
func (a *Accumulator) Len() int {
	return a.total.Len()
}

// Snapshot returns a copy of the accumulated mapping.
func (a *Accumulator) Snapshot() *analytics.FrequencyMap {
	return a.total.Clone()
}
