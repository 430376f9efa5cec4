package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wordcounter/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool
	var runID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previous runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("invalid --limit %d: must not be negative", limit)
			}
			store, err := ctx.openHistory()
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			if store == nil {
				return errors.New("run history is disabled (set history.enabled = true in the config)")
			}
			defer store.Close()

			if id := strings.TrimSpace(runID); id != "" {
				run, err := store.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, run)
				}
				printRunDetails(cmd.OutOrStdout(), run)
				return nil
			}

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOutput {
				if runs == nil {
					runs = []history.Run{}
				}
				return writeJSON(cmd, runs)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Run", "Started", "Input", "Words", "Total", "Took", "Report"},
				buildHistoryRows(runs),
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
				nil,
				shouldColorize(out),
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&runID, "id", "", "Show a single run by its full ID")
	return cmd
}

func buildHistoryRows(runs []history.Run) [][]string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		id := run.ID
		if len(id) > 8 {
			id = id[:8]
		}
		rows = append(rows, []string{
			id,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.InputPath,
			strconv.Itoa(run.DistinctWords),
			strconv.Itoa(run.TotalWords),
			run.Duration().Round(time.Millisecond).String(),
			run.ReportPath,
		})
	}
	return rows
}

func printRunDetails(out io.Writer, run *history.Run) {
	fmt.Fprintf(out, "Run: %s\n", run.ID)
	fmt.Fprintf(out, "Input: %s\n", run.InputPath)
	fmt.Fprintf(out, "Folder: %s\n", run.OutputDir)
	fmt.Fprintf(out, "Report: %s\n", run.ReportPath)
	fmt.Fprintf(out, "Distinct words: %d\n", run.DistinctWords)
	fmt.Fprintf(out, "Total words: %d\n", run.TotalWords)
	fmt.Fprintf(out, "Started: %s\n", run.StartedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Took: %s\n", run.Duration().Round(time.Millisecond))
}
