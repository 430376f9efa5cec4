package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wordcounter/internal/config"
	"wordcounter/internal/logging"
	"wordcounter/internal/pipeline"
)

const (
	inputPrompt  = "Enter name of an input file: "
	folderPrompt = "Enter name of a folder: "
)

type countOptions struct {
	input   string
	output  string
	summary bool
}

func runCount(cmd *cobra.Command, ctx *commandContext, opts countOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger := ctx.loggerValue()

	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	inputName := opts.input
	if inputName == "" {
		if inputName, err = promptLine(in, out, inputPrompt); err != nil {
			return fmt.Errorf("read input file name: %w", err)
		}
	}
	folderName := opts.output
	if folderName == "" {
		if folderName, err = promptLine(in, out, folderPrompt); err != nil {
			return fmt.Errorf("read folder name: %w", err)
		}
	}

	inputPath, err := config.ExpandPath(inputName)
	if err != nil {
		return err
	}
	folderPath, err := config.ExpandPath(folderName)
	if err != nil {
		return err
	}

	runner := pipeline.New(logger, nil)
	store, err := ctx.openHistory()
	if err != nil {
		logger.Warn("run history unavailable", logging.Error(err))
	} else if store != nil {
		defer store.Close()
		runner = pipeline.New(logger, store)
	}

	result, err := runner.Run(cmd.Context(), pipeline.Options{
		InputPath: inputPath,
		OutputDir: folderPath,
		Name:      inputName,
	})
	if err != nil {
		return err
	}
	logger.Debug("count command finished", slog.String("run_id", result.RunID))

	if opts.summary {
		fmt.Fprintln(out, renderSummary(result, cfg.Report.SummaryLimit, out))
	}
	return nil
}

// promptLine writes prompt and returns the next line without its terminator.
// A final line without a newline is accepted.
func promptLine(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", errors.New("no answer given")
		}
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return "", errors.New("no answer given")
	}
	return line, nil
}

func renderSummary(result *pipeline.Result, limit int, out io.Writer) string {
	words, counts := result.Words, result.Counts
	truncated := limit > 0 && len(words) > limit
	if truncated {
		words, counts = words[:limit], counts[:limit]
	}

	rows := make([][]string, len(words))
	for i, word := range words {
		rows[i] = []string{word, strconv.Itoa(counts[i])}
	}
	footer := []string{"Total", strconv.Itoa(result.TotalWords)}
	table := renderTable(
		[]string{"Word", "Count"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
		footer,
		shouldColorize(out),
	)
	if truncated {
		table += fmt.Sprintf("\n(showing %d of %d words; see %s)", limit, len(result.Words), result.ReportPath)
	}
	return table
}
