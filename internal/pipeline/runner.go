// Package pipeline wires the scanner and aggregator into the scan -> analyze
// flow the CLI commands share. The unit of work is one file; there is no
// retry logic because the failure model is skip-and-continue inside the
// scanner, and no concurrency because a single pass over a bounded file
// does not need any.
package pipeline

import (
	"log/slog"
	"time"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/analysis"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/domain"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/observability"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/scanner"
)

// Runner executes scan-and-aggregate runs over TRV files.
type Runner struct {
	scanner *scanner.Scanner
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewRunner creates a Runner sharing one scanner, logger, and metrics set.
func NewRunner(logger *slog.Logger, metrics *observability.Metrics) *Runner {
	return &Runner{
		scanner: scanner.New(logger, metrics),
		logger:  logger,
		metrics: metrics,
	}
}

// Outcome bundles everything one run produced.
type Outcome struct {
	Blocks      []domain.Block
	Diagnostics []scanner.Diagnostic
	Summary     analysis.Summary
}

// Run scans path and aggregates the result. Only an unreadable input is an
// error; all structural problems surface as diagnostics in the Outcome.
func (r *Runner) Run(path string) (Outcome, error) {
	start := time.Now()

	res, err := r.scanner.ScanFile(path)
	if err != nil {
		return Outcome{}, err
	}

	summary := analysis.Aggregate(res.Blocks)
	r.metrics.ScanDuration.Observe(time.Since(start).Seconds())

	r.logger.Info("scan complete",
		"input", path,
		"blocks", len(res.Blocks),
		"diagnostics", len(res.Diagnostics),
		"track_points", totalPoints(summary),
	)

	return Outcome{
		Blocks:      res.Blocks,
		Diagnostics: res.Diagnostics,
		Summary:     summary,
	}, nil
}

func totalPoints(s analysis.Summary) int {
	if s.TrackLengthStats == nil {
		return 0
	}
	return s.TrackLengthStats.TotalPoints
}
