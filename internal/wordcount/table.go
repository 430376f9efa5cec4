package wordcount

import (
	"maps"
	"slices"
)

// Table maps each distinct word to its occurrence count.
type Table struct {
	counts map[string]int
	total  int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add records one occurrence of word and reports whether it was new.
func (t *Table) Add(word string) bool {
	count, ok := t.counts[word]
	t.counts[word] = count + 1
	t.total++
	return !ok
}

// Value returns the count recorded for word.
func (t *Table) Value(word string) (int, bool) {
	count, ok := t.counts[word]
	return count, ok
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	return len(t.counts)
}

// Total returns the number of word occurrences recorded.
func (t *Table) Total() int {
	return t.total
}

// Words returns the table keys in byte order.
func (t *Table) Words() []string {
	return slices.Sorted(maps.Keys(t.counts))
}

// WordSet holds distinct words in the order they were first added.
type WordSet struct {
	order []string
	index map[string]struct{}
}

// NewWordSet returns an empty set.
func NewWordSet() *WordSet {
	return &WordSet{index: make(map[string]struct{})}
}

// Add inserts word unless it is already present.
func (s *WordSet) Add(word string) bool {
	if _, ok := s.index[word]; ok {
		return false
	}
	s.index[word] = struct{}{}
	s.order = append(s.order, word)
	return true
}

// Len returns the number of words in the set.
func (s *WordSet) Len() int {
	return len(s.order)
}

// Items returns a copy of the words in first-seen order.
func (s *WordSet) Items() []string {
	return slices.Clone(s.order)
}

// Drain empties the set and returns its former contents in first-seen order.
func (s *WordSet) Drain() []string {
	items := s.order
	s.order = nil
	clear(s.index)
	return items
}
