package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var opts countOptions

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "wordcounter",
		Short: "Count the words in a text file and write an HTML report",
		Long: "wordcounter prompts for an input file and an output folder, counts every\n" +
			"word in the file, and writes index.html listing the words alphabetically\n" +
			"with their counts.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, ctx, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVarP(&opts.input, "input", "i", "", "Input file (skips the prompt)")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output folder (skips the prompt)")
	rootCmd.Flags().BoolVar(&opts.summary, "summary", false, "Print a table of the counted words after writing the report")

	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
