package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/config"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/observability"
)

var rootCmd = &cobra.Command{
	Use:   "trv",
	Short: "Parse and analyze tropical-cyclone residual vortex track data",
	Long: `trv works on TRV best-track files: line-oriented CSV where each
residual vortex contributes one "66666"-sentinel header line followed by
its hourly track point lines.

Commands:
  analyze      scan a file and print the dataset analysis report
  lookup       find vortices by name or by year
  export       write the parsed dataset as JSON, CSV, or GeoJSON
  interactive  analysis report plus guided export prompts

The input path defaults to TRV_INPUT_PATH and may be overridden with a
positional argument on every command.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newEnv loads config and builds the logger; every subcommand starts here.
func newEnv() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, observability.NewLogger(cfg), nil
}

// resolveInput picks the input path (positional argument over configured
// default) and verifies the file exists before any scanning starts.
func resolveInput(cfg *config.Config, args []string) (string, error) {
	path := cfg.InputPath
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("input file %s: %w", path, err)
	}
	return path, nil
}
