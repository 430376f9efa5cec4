package wordcount_test

import (
	"errors"
	"io"
	"reflect"
	"slices"
	"strings"
	"testing"

	"wordcounter/internal/wordcount"
)

func TestCountCaseSensitive(t *testing.T) {
	table, set, err := wordcount.Count(strings.NewReader("The cat sat on the mat."))
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	want := map[string]int{"The": 1, "cat": 1, "sat": 1, "on": 1, "the": 1, "mat": 1}
	if table.Len() != len(want) {
		t.Fatalf("expected %d distinct words, got %d", len(want), table.Len())
	}
	for word, count := range want {
		got, ok := table.Value(word)
		if !ok || got != count {
			t.Fatalf("count for %q = %d (present=%v), want %d", word, got, ok, count)
		}
	}
	if got := set.Items(); !reflect.DeepEqual(got, []string{"The", "cat", "sat", "on", "the", "mat"}) {
		t.Fatalf("unexpected set order %#v", got)
	}
	if table.Total() != 6 {
		t.Fatalf("expected total 6, got %d", table.Total())
	}
}

func TestCountRepeatedWord(t *testing.T) {
	table, set, err := wordcount.Count(strings.NewReader("a a a"))
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if got, _ := table.Value("a"); got != 3 {
		t.Fatalf("expected a=3, got %d", got)
	}
	if set.Len() != 1 || table.Len() != 1 {
		t.Fatalf("expected one distinct word, got set=%d table=%d", set.Len(), table.Len())
	}
}

func TestCountEmptyAndSeparatorOnlyInput(t *testing.T) {
	for _, input := range []string{"", "1,2 3", "\n\n", "...\r\n!!!"} {
		table, set, err := wordcount.Count(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Count(%q) returned error: %v", input, err)
		}
		if table.Len() != 0 || set.Len() != 0 {
			t.Fatalf("Count(%q) recorded words: table=%v set=%v", input, table.Words(), set.Items())
		}
	}
}

func TestCountMultipleLines(t *testing.T) {
	input := "alpha beta\r\nbeta gamma\nalpha\nalpha"
	table, set, err := wordcount.Count(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	want := map[string]int{"alpha": 3, "beta": 2, "gamma": 1}
	for word, count := range want {
		if got, _ := table.Value(word); got != count {
			t.Fatalf("count for %q = %d, want %d", word, got, count)
		}
	}
	if !reflect.DeepEqual(set.Items(), []string{"alpha", "beta", "gamma"}) {
		t.Fatalf("unexpected set order %#v", set.Items())
	}
}

func TestCountWordsDoNotSpanLines(t *testing.T) {
	table, _, err := wordcount.Count(strings.NewReader("foo\nbar"))
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if _, ok := table.Value("foobar"); ok {
		t.Fatal("words must not join across a line break")
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 words, got %v", table.Words())
	}
}

func TestCountLongLine(t *testing.T) {
	line := strings.Repeat("word ", 100_000)
	table, _, err := wordcount.Count(strings.NewReader(line))
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if got, _ := table.Value("word"); got != 100_000 {
		t.Fatalf("expected 100000 occurrences, got %d", got)
	}
}

func TestCountSetMatchesTableKeys(t *testing.T) {
	input := "Go is fun. GO go Go! is it? It is."
	table, set, err := wordcount.Count(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if set.Len() != table.Len() {
		t.Fatalf("set has %d words, table has %d", set.Len(), table.Len())
	}
	for _, word := range set.Items() {
		count, ok := table.Value(word)
		if !ok || count < 1 {
			t.Fatalf("set word %q missing from table (count=%d)", word, count)
		}
	}
	if !slices.Equal(slices.Sorted(slices.Values(set.Items())), table.Words()) {
		t.Fatalf("set %v does not match table keys %v", set.Items(), table.Words())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestCountPropagatesReadError(t *testing.T) {
	_, _, err := wordcount.Count(failingReader{})
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}
