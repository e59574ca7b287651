package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the TRV scan
// pipeline.
type Metrics struct {
	LinesScanned         prometheus.Counter
	BlocksParsed         prometheus.Counter
	MalformedHeaderLines prometheus.Counter
	MalformedTrackLines  prometheus.Counter
	CountMismatches      prometheus.Counter

	// Per-scan observations.
	TrackLength  prometheus.Histogram
	ScanDuration prometheus.Histogram
}

// NewMetrics creates and registers all scan metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		LinesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trv",
			Name:      "lines_scanned_total",
			Help:      "Total input lines examined by the block scanner.",
		}),
		BlocksParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trv",
			Name:      "blocks_parsed_total",
			Help:      "Total residual vortex blocks emitted.",
		}),
		MalformedHeaderLines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trv",
			Name:      "malformed_header_lines_total",
			Help:      "Header lines dropped for wrong arity or unparseable integer fields.",
		}),
		MalformedTrackLines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trv",
			Name:      "malformed_track_lines_total",
			Help:      "Track lines dropped for wrong arity or unparseable integer fields.",
		}),
		CountMismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trv",
			Name:      "count_mismatches_total",
			Help:      "Blocks whose collected point count differs from the declared count.",
		}),
		TrackLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "trv",
			Name:      "track_length_points",
			Help:      "Track points collected per block.",
			Buckets:   []float64{1, 3, 6, 12, 24, 48, 96, 168},
		}),
		ScanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "trv",
			Name:      "scan_duration_seconds",
			Help:      "Duration of a complete scan-and-aggregate run over one file.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}

	prometheus.MustRegister(
		m.LinesScanned,
		m.BlocksParsed,
		m.MalformedHeaderLines,
		m.MalformedTrackLines,
		m.CountMismatches,
		m.TrackLength,
		m.ScanDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		LinesScanned:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "trv", Name: "lines_scanned_total"}),
		BlocksParsed:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "trv", Name: "blocks_parsed_total"}),
		MalformedHeaderLines: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "trv", Name: "malformed_header_lines_total"}),
		MalformedTrackLines:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "trv", Name: "malformed_track_lines_total"}),
		CountMismatches:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "trv", Name: "count_mismatches_total"}),
		TrackLength:          prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "trv", Name: "track_length_points"}),
		ScanDuration:         prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "trv", Name: "scan_duration_seconds"}),
	}
}
