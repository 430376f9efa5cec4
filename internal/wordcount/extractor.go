package wordcount

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Compare orders a and b ignoring case. It returns 0 for words that differ
// only by case.
func Compare(a, b string) int {
	folder := cases.Fold()
	return strings.Compare(folder.String(a), folder.String(b))
}

type sortEntry struct {
	word string
	key  string
}

// Sorted returns words in ascending case-insensitive order. Words that compare
// equal keep their relative order from the input.
func Sorted(words []string) []string {
	folder := cases.Fold()
	entries := make([]sortEntry, len(words))
	for i, word := range words {
		entries[i] = sortEntry{word: word, key: folder.String(word)}
	}
	slices.SortStableFunc(entries, func(a, b sortEntry) int {
		return strings.Compare(a.key, b.key)
	})

	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.word
	}
	return out
}

// Extractor yields the words of a drained WordSet smallest first.
type Extractor struct {
	remaining []string
}

// NewExtractor drains set and prepares its words for ordered extraction.
func NewExtractor(set *WordSet) *Extractor {
	return &Extractor{remaining: Sorted(set.Drain())}
}

// Next removes and returns the smallest remaining word. The boolean is false
// once every word has been returned.
func (e *Extractor) Next() (string, bool) {
	if len(e.remaining) == 0 {
		return "", false
	}
	word := e.remaining[0]
	e.remaining = e.remaining[1:]
	return word, true
}

// Len returns the number of words not yet extracted.
func (e *Extractor) Len() int {
	return len(e.remaining)
}
