package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/domain"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/export"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/observability"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/pipeline"
)

var (
	lookupName string
	lookupYear string
	lookupJSON bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [file]",
	Short: "Find vortices by name or by year",
	Long: `lookup scans the input and prints the blocks matching --name
(case-insensitive exact match) or --year (YYYY prefix of the start date),
in original file order. With --json the matching blocks are printed as
full JSON instead of one-line summaries.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if (lookupName == "") == (lookupYear == "") {
			return fmt.Errorf("exactly one of --name or --year is required")
		}

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

		var matched []domain.Block
		if lookupName != "" {
			matched = domain.FilterByName(out.Blocks, lookupName)
		} else {
			matched = domain.FilterByYear(out.Blocks, lookupYear)
		}

		w := cmd.OutOrStdout()
		if len(matched) == 0 {
			fmt.Fprintln(w, "No matching vortices found.")
			return nil
		}

		if lookupJSON {
			return export.WriteJSON(w, matched)
		}
		for _, b := range matched {
			fmt.Fprintf(w, "%s  points=%d  stop=%s\n",
				b.Header.Identity(), b.Duration(), b.Header.StopReason.Label())
		}
		return nil
	},
}

func init() {
	lookupCmd.Flags().StringVar(&lookupName, "name", "", "vortex name (case-insensitive)")
	lookupCmd.Flags().StringVar(&lookupYear, "year", "", "start year, YYYY")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "print matching blocks as JSON")
	rootCmd.AddCommand(lookupCmd)
}
