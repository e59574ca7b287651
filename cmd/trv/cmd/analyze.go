package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/display"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/observability"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/pipeline"
)

var analyzeShowWarnings bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Scan a TRV file and print the dataset analysis report",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := newEnv()
		if err != nil {
			return err
		}
		path, err := resolveInput(cfg, args)
		if err != nil {
			return err
		}

		runner := pipeline.NewRunner(logger, observability.NewMetrics())
		out, err := runner.Run(path)
		if err != nil {
			return err
		}

		if analyzeShowWarnings {
			display.PrintDiagnostics(os.Stderr, out.Diagnostics)
		}
		display.PrintSummary(cmd.OutOrStdout(), out.Summary)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeShowWarnings, "warnings", false, "print per-line scan diagnostics to stderr")
	rootCmd.AddCommand(analyzeCmd)
}
