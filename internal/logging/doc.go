// Package logging assembles structured slog loggers used across wordcounter.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so pipeline code can tag log lines
// with the current run ID. A no-op logger is provided for tests and for
// callers that do not care about diagnostics.
//
// Console output goes to stderr by default; stdout belongs to the operator
// prompts and tables.
package logging
