// Package display renders analysis results and example blocks as plain-text
// reports for the CLI. Everything writes to an io.Writer so tests can
// capture output.
package display

import (
	"fmt"
	"io"
	"sort"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/analysis"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/scanner"
)

const (
	wideRule   = "================================================================================"
	narrowRule = "------------------------------------------------------------"
)

// PrintSummary writes the full analysis report: totals, track-length stats,
// yearly distribution with duration columns, stop-reason distribution, and
// overall duration percentages.
func PrintSummary(w io.Writer, s analysis.Summary) {
	fmt.Fprintln(w, wideRule)
	fmt.Fprintln(w, "DATASET ANALYSIS RESULTS")
	fmt.Fprintln(w, wideRule)

	fmt.Fprintf(w, "\nTotal TRV residual vortices: %d\n", s.TotalBlocks)
	if s.TotalBlocks == 0 {
		fmt.Fprintln(w, "No data.")
		return
	}

	if st := s.TrackLengthStats; st != nil {
		fmt.Fprintf(w, "Total track points: %d\n", st.TotalPoints)
		fmt.Fprintf(w, "\nAverage points per track: %.1f\n", st.Mean)
		fmt.Fprintf(w, "Min points per track: %d\n", st.Min)
		fmt.Fprintf(w, "Max points per track: %d\n", st.Max)
	}

	if len(s.YearsCovered) > 0 {
		fmt.Fprintf(w, "\nYears covered: %d years\n", len(s.YearsCovered))
		fmt.Fprintf(w, "From %s to %s\n", s.YearsCovered[0], s.YearsCovered[len(s.YearsCovered)-1])
	}

	printYearTable(w, s)
	printStopReasons(w, s)
	printDurationTotals(w, s)
}

func printYearTable(w io.Writer, s analysis.Summary) {
	fmt.Fprintf(w, "\n%s\n", narrowRule)
	fmt.Fprintln(w, "Yearly distribution (total and by duration)")
	fmt.Fprintln(w, narrowRule)
	fmt.Fprintf(w, "%-6s %-6s %-6s %-6s %-6s\n", "Year", "Total", ">=6h", ">=12h", ">=24h")
	fmt.Fprintln(w, narrowRule)
	for _, year := range s.YearsCovered {
		fmt.Fprintf(w, "%-6s %-6d %-6d %-6d %-6d\n",
			year,
			s.YearCounts[year],
			s.DurationCounts["6h"][year],
			s.DurationCounts["12h"][year],
			s.DurationCounts["24h"][year],
		)
	}
}

func printStopReasons(w io.Writer, s analysis.Summary) {
	fmt.Fprintf(w, "\n%s\n", narrowRule)
	fmt.Fprintln(w, "Stop reason distribution")
	fmt.Fprintln(w, narrowRule)

	labels := make([]string, 0, len(s.StopReasonCounts))
	for label := range s.StopReasonCounts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Fprintf(w, "  %s: %d TRVs\n", label, s.StopReasonCounts[label])
	}
}

func printDurationTotals(w io.Writer, s analysis.Summary) {
	fmt.Fprintf(w, "\n%s\n", narrowRule)
	fmt.Fprintln(w, "Overall duration statistics")
	fmt.Fprintln(w, narrowRule)
	for _, key := range analysis.DurationKeys {
		total := 0
		for _, n := range s.DurationCounts[key] {
			total += n
		}
		pct := float64(total) / float64(s.TotalBlocks) * 100
		fmt.Fprintf(w, "Total residual vortices >=%s hours: %d (%.1f%%)\n", trimH(key), total, pct)
	}
}

func trimH(key string) string {
	if len(key) > 0 && key[len(key)-1] == 'h' {
		return key[:len(key)-1]
	}
	return key
}

// PrintDiagnostics writes each diagnostic on its own line. Callers decide
// whether to show them; the parse result is unaffected either way.
func PrintDiagnostics(w io.Writer, diags []scanner.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(w, "warning: %s\n", d)
	}
}
