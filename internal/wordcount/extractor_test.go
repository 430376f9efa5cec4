package wordcount_test

import (
	"reflect"
	"slices"
	"testing"

	"wordcounter/internal/wordcount"
)

func TestCompareIgnoresCase(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"apple", "Banana", -1},
		{"Zebra", "apple", 1},
		{"The", "the", 0},
		{"on", "onion", -1},
	}
	for _, tc := range cases {
		if got := wordcount.Compare(tc.a, tc.b); got != tc.want {
			t.Fatalf("Compare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSortedKeepsFirstSeenOrderForCaseVariants(t *testing.T) {
	got := wordcount.Sorted([]string{"The", "cat", "sat", "on", "the", "mat"})
	want := []string{"cat", "mat", "on", "sat", "The", "the"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sorted = %#v, want %#v", got, want)
	}

	got = wordcount.Sorted([]string{"the", "The"})
	if !reflect.DeepEqual(got, []string{"the", "The"}) {
		t.Fatalf("expected input order for ties, got %#v", got)
	}
}

func TestSortedDoesNotModifyInput(t *testing.T) {
	input := []string{"b", "a"}
	_ = wordcount.Sorted(input)
	if !reflect.DeepEqual(input, []string{"b", "a"}) {
		t.Fatalf("input mutated: %#v", input)
	}
}

func TestExtractorDrainsSetInOrder(t *testing.T) {
	set := wordcount.NewWordSet()
	words := []string{"pear", "Apple", "banana", "apple", "Cherry", "date"}
	for _, w := range words {
		set.Add(w)
	}

	extractor := wordcount.NewExtractor(set)
	if set.Len() != 0 {
		t.Fatalf("expected set to be drained, %d words remain", set.Len())
	}
	if extractor.Len() != len(words) {
		t.Fatalf("expected %d words to extract, got %d", len(words), extractor.Len())
	}

	var got []string
	for {
		word, ok := extractor.Next()
		if !ok {
			break
		}
		got = append(got, word)
	}
	want := []string{"Apple", "apple", "banana", "Cherry", "date", "pear"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("extracted %#v, want %#v", got, want)
	}
	for i := 1; i < len(got); i++ {
		if wordcount.Compare(got[i-1], got[i]) > 0 {
			t.Fatalf("sequence not ascending at %d: %q > %q", i, got[i-1], got[i])
		}
	}

	sortedIn := slices.Clone(words)
	slices.Sort(sortedIn)
	sortedOut := slices.Clone(got)
	slices.Sort(sortedOut)
	if !reflect.DeepEqual(sortedIn, sortedOut) {
		t.Fatalf("extracted words are not a permutation of the set: %#v", got)
	}
	if _, ok := extractor.Next(); ok {
		t.Fatal("expected exhausted extractor")
	}
}

func TestExtractorEmptySet(t *testing.T) {
	extractor := wordcount.NewExtractor(wordcount.NewWordSet())
	if _, ok := extractor.Next(); ok {
		t.Fatal("expected no words from an empty set")
	}
}
