// Package history persists a record of every completed wordcounter run.
//
// Runs live in a small SQLite database (modernc.org/sqlite, no cgo). Writers
// take an advisory file lock next to the database so overlapping CLI
// invocations append their records one at a time, and busy errors are retried
// with a short backoff.
package history
