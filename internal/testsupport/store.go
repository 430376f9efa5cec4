package testsupport

import (
	"context"
	"testing"
	"time"

	"wordcounter/internal/config"
	"wordcounter/internal/history"
)

// MustOpenStore opens a history.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// RecordRun stores a run with the given input path, started at the given
// offset from a fixed base time.
func RecordRun(t testing.TB, store *history.Store, input string, offset time.Duration) history.Run {
	t.Helper()

	started := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).Add(offset)
	run := history.Run{
		ID:            history.NewRunID(),
		InputPath:     input,
		OutputDir:     "/tmp/out",
		ReportPath:    "/tmp/out/index.html",
		DistinctWords: 2,
		TotalWords:    5,
		StartedAt:     started,
		FinishedAt:    started.Add(150 * time.Millisecond),
	}
	if err := store.Record(context.Background(), run); err != nil {
		t.Fatalf("store.Record: %v", err)
	}
	return run
}
