package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"wordcounter/internal/history"
	"wordcounter/internal/logging"
	"wordcounter/internal/report"
	"wordcounter/internal/wordcount"
)

// Options names the input file and output folder for a run.
type Options struct {
	InputPath string
	OutputDir string
	// Name is shown in the report title. Defaults to InputPath.
	Name string
}

// Recorder persists completed runs.
type Recorder interface {
	Record(ctx context.Context, run history.Run) error
}

// Result describes a completed run. Counts[i] is the count of Words[i].
type Result struct {
	RunID      string
	Words      []string
	Counts     []int
	TotalWords int
	ReportPath string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Runner executes pipeline runs.
type Runner struct {
	logger   *slog.Logger
	recorder Recorder
	now      func() time.Time
}

// New returns a Runner. Both arguments may be nil.
func New(logger *slog.Logger, recorder Recorder) *Runner {
	return &Runner{
		logger:   logging.NewComponentLogger(logger, "pipeline"),
		recorder: recorder,
		now:      time.Now,
	}
}

// Run counts the words of opts.InputPath and writes the report into
// opts.OutputDir.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.InputPath == "" {
		return nil, errors.New("input path is required")
	}
	name := opts.Name
	if name == "" {
		name = opts.InputPath
	}

	runID := history.NewRunID()
	ctx = logging.WithRunID(ctx, runID)
	log := logging.WithContext(ctx, r.logger)
	started := r.now()

	table, set, err := countFile(opts.InputPath)
	if err != nil {
		return nil, err
	}
	log.Debug("input counted",
		slog.String("input", opts.InputPath),
		slog.Int("distinct_words", table.Len()),
		slog.Int("total_words", table.Total()),
	)

	words, counts := Tally(table, set)
	reportPath, err := report.WriteIndex(opts.OutputDir, report.Page{Name: name, Words: words, Counts: counts})
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:      runID,
		Words:      words,
		Counts:     counts,
		TotalWords: table.Total(),
		ReportPath: reportPath,
		StartedAt:  started,
		FinishedAt: r.now(),
	}
	log.Debug("report written",
		slog.String("report", reportPath),
		slog.Int("distinct_words", len(words)),
		slog.Int("total_words", result.TotalWords),
		slog.Duration("elapsed", result.FinishedAt.Sub(started)),
	)

	if r.recorder != nil {
		run := history.Run{
			ID:            runID,
			InputPath:     opts.InputPath,
			OutputDir:     opts.OutputDir,
			ReportPath:    reportPath,
			DistinctWords: len(words),
			TotalWords:    result.TotalWords,
			StartedAt:     result.StartedAt,
			FinishedAt:    result.FinishedAt,
		}
		if err := r.recorder.Record(ctx, run); err != nil {
			log.Warn("run history not updated", logging.Error(err))
		}
	}
	return result, nil
}

// Tally drains set in ascending case-insensitive order and pairs every word
// with its count from table.
func Tally(table *wordcount.Table, set *wordcount.WordSet) ([]string, []int) {
	extractor := wordcount.NewExtractor(set)
	words := make([]string, 0, extractor.Len())
	counts := make([]int, 0, extractor.Len())
	for {
		word, ok := extractor.Next()
		if !ok {
			break
		}
		count, _ := table.Value(word)
		words = append(words, word)
		counts = append(counts, count)
	}
	return words, counts
}

func countFile(path string) (*wordcount.Table, *wordcount.WordSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	return wordcount.Count(file)
}
