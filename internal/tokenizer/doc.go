// Package tokenizer splits lines of text into word and separator runs.
//
// Lines are first normalized so every byte that is not an ASCII letter becomes
// a space. The scanner then walks the line one maximal run at a time: a run of
// separator characters or a run of non-separator characters. Only runs that
// start with a letter are reported as words.
package tokenizer
