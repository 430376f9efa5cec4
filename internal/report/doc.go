// Package report renders the word count table as a static HTML page.
//
// The page layout is fixed: a title and heading naming the input, followed by
// a bordered two-column table with one row per word. WriteIndex places the
// page at index.html inside the chosen folder, replacing any previous report.
package report
