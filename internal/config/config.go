package config

import (
	"fmt"
	"os"
)

// Config holds all tool settings, populated from environment variables.
// Command-line flags may override individual fields after Load.
type Config struct {
	// InputPath is the default TRV dataset file used when no path argument
	// is given on the command line.
	InputPath string

	// ExportDir is the directory export files are written into when the
	// caller does not name an output path.
	ExportDir string

	LogLevel  string
	LogFormat string
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"text": true, "json": true}
)

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	cfg := &Config{
		InputPath: envOrDefault("TRV_INPUT_PATH", "data/trv_19802024.csv"),
		ExportDir: envOrDefault("TRV_EXPORT_DIR", "data"),
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),
	}

	if !validLevels[cfg.LogLevel] {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: want debug, info, warn, or error", cfg.LogLevel)
	}
	if !validFormats[cfg.LogFormat] {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want text or json", cfg.LogFormat)
	}
	if cfg.InputPath == "" {
		return nil, fmt.Errorf("TRV_INPUT_PATH must not be empty")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
