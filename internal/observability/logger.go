package observability

import (
	"log/slog"
	"os"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/config"
)

// NewLogger builds a slog.Logger from the configured level and format.
// Unrecognized values fall back to info/text so a bad environment never
// silences logging entirely.
func NewLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
