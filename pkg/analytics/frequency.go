package analytics

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FrequencyMap maps query words to non-negative counts and remembers the
// order in which words were first inserted. Chart axes follow that order.
type FrequencyMap struct {
	keys   []string
	counts map[string]int
}

// NewFrequencyMap returns an empty mapping.
func NewFrequencyMap() *FrequencyMap {
	return &FrequencyMap{counts: make(map[string]int)}
}

// Set stores count for word. An existing word keeps its original position
// and only its count is replaced. Negative counts are stored as zero.
func (f *FrequencyMap) Set(word string, count int) {
	if count < 0 {
		count = 0
	}
	if _, ok := f.counts[word]; !ok {
		f.keys = append(f.keys, word)
	}
	f.counts[word] = count
}

// Get returns the count for word and whether it is present.
func (f *FrequencyMap) Get(word string) (int, bool) {
	c, ok := f.counts[word]
	return c, ok
}

// Len returns the number of distinct words.
func (f *FrequencyMap) Len() int {
	return len(f.keys)
}

// Keys returns the words in insertion order.
func (f *FrequencyMap) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Values returns the counts in insertion order.
func (f *FrequencyMap) Values() []int {
	out := make([]int, len(f.keys))
	for i, k := range f.keys {
		out[i] = f.counts[k]
	}
	return out
}

// Each calls fn for every entry in insertion order.
func (f *FrequencyMap) Each(fn func(word string, count int)) {
	for _, k := range f.keys {
		fn(k, f.counts[k])
	}
}

// Clone returns an independent copy.
func (f *FrequencyMap) Clone() *FrequencyMap {
	out := &FrequencyMap{
		keys:   make([]string, len(f.keys)),
		counts: make(map[string]int, len(f.counts)),
	}
	copy(out.keys, f.keys)
	for k, v := range f.counts {
		out.counts[k] = v
	}
	return out
}

// ToMap returns a plain map copy; ordering is lost.
func (f *FrequencyMap) ToMap() map[string]int {
	out := make(map[string]int, len(f.counts))
	for k, v := range f.counts {
		out[k] = v
	}
	return out
}

// Total returns the sum of all counts.
func (f *FrequencyMap) Total() int {
	total := 0
	for _, v := range f.counts {
		total += v
	}
	return total
}

// MarshalYAML emits the mapping as an ordered YAML mapping.
func (f *FrequencyMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range f.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("%d", f.counts[k])},
		)
	}
	return node, nil
}

// UnmarshalYAML reads an ordered YAML mapping of word to count.
func (f *FrequencyMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("frequency map: expected mapping, got kind %d", value.Kind)
	}
	f.keys = nil
	f.counts = make(map[string]int, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var count int
		if err := value.Content[i+1].Decode(&count); err != nil {
			return fmt.Errorf("frequency map: count for %q: %w", value.Content[i].Value, err)
		}
		f.Set(value.Content[i].Value, count)
	}
	return nil
}
