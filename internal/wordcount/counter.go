package wordcount

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"wordcounter/internal/tokenizer"
)

// Count reads r line by line and tallies every word. The returned set always
// holds exactly the keys of the returned table.
func Count(r io.Reader) (*Table, *WordSet, error) {
	table := NewTable()
	words := NewWordSet()

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			for _, word := range tokenizer.Words(line) {
				if table.Add(word) {
					words.Add(word)
				}
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read input: %w", err)
		}
	}
	return table, words, nil
}
