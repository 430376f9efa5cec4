// Package wordcount counts word occurrences and orders the distinct words.
//
// Count consumes an input stream line by line and produces a case-sensitive
// Table of counts together with the WordSet of distinct words in first-seen
// order. An Extractor then drains the set into ascending case-insensitive
// order; words that differ only by case keep their first-seen order, so the
// same input always yields the same sequence.
package wordcount
