package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/display"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/observability"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/pipeline"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive [file]",
	Short: "Analysis report plus guided export prompts",
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

		w := cmd.OutOrStdout()
		if len(out.Blocks) == 0 {
			fmt.Fprintln(w, "No data was parsed. Exiting.")
			return nil
		}

		display.PrintSummary(w, out.Summary)
		display.PrintExample(w, out.Blocks, 0)

		reader := bufio.NewScanner(cmd.InOrStdin())
		fmt.Fprint(w, "\nDo you want to export the data? (y/n): ")
		if answer(reader) != "y" {
			fmt.Fprintln(w, "\nData parsing complete.")
			return nil
		}

		fmt.Fprintln(w, "\nExport formats available:")
		fmt.Fprintln(w, "1. JSON (preserves all original data)")
		fmt.Fprintln(w, "2. CSV (simplified format for analysis)")
		fmt.Fprintln(w, "3. GeoJSON (track lines for mapping)")
		fmt.Fprint(w, "\nSelect export format (1, 2 or 3): ")

		formats := map[string]string{"1": "json", "2": "csv", "3": "geojson"}
		format, ok := formats[answer(reader)]
		if !ok {
			fmt.Fprintln(w, "Invalid choice. Export cancelled.")
			return nil
		}

		dest, err := writeExport(cfg, format, "", out.Blocks)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Data exported to %s\n", dest)
		fmt.Fprintln(w, "\nData parsing complete.")
		return nil
	},
}

func answer(reader *bufio.Scanner) string {
	if !reader.Scan() {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(reader.Text()))
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
