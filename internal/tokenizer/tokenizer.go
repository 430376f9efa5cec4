package tokenizer

// SeparatorSet is the set of bytes treated as separators by the scanner.
type SeparatorSet map[byte]struct{}

// DefaultSeparators are the separators used when counting words. After
// normalization only spaces remain in practice.
var DefaultSeparators = NewSeparatorSet(" ,")

// NewSeparatorSet returns the set of distinct bytes in chars.
func NewSeparatorSet(chars string) SeparatorSet {
	set := make(SeparatorSet, len(chars))
	for i := 0; i < len(chars); i++ {
		set[chars[i]] = struct{}{}
	}
	return set
}

// Contains reports whether c is a separator.
func (s SeparatorSet) Contains(c byte) bool {
	_, ok := s[c]
	return ok
}

// NextWordOrSeparator returns the longest run of text starting at position
// whose bytes all share the separator membership of text[position].
// It panics unless 0 <= position < len(text).
func NextWordOrSeparator(text string, position int, separators SeparatorSet) string {
	if position < 0 || position >= len(text) {
		panic("tokenizer: position out of range")
	}
	inSeparator := separators.Contains(text[position])
	end := position + 1
	for end < len(text) && separators.Contains(text[end]) == inSeparator {
		end++
	}
	return text[position:end]
}

// Normalize replaces every byte that is not an ASCII letter with a space.
// The result has the same length as line.
func Normalize(line string) string {
	buf := []byte(line)
	for i, c := range buf {
		if !isLetter(c) {
			buf[i] = ' '
		}
	}
	return string(buf)
}

// Words returns the words of line in order of appearance.
func Words(line string) []string {
	line = Normalize(line)
	var words []string
	for i := 0; i < len(line); {
		token := NextWordOrSeparator(line, i, DefaultSeparators)
		if isLetter(token[0]) {
			words = append(words, token)
		}
		i += len(token)
	}
	return words
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
