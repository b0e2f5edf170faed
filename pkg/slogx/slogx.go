// Package slogx builds configured log/slog loggers from simple string
// settings, so binaries can wire logging straight from environment
// variables.
package slogx

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	App    string
	Level  string // e.g. "debug", "info", "warn", "error"
	Format string // e.g. "json", "text"
}

// New returns a configured slog.Logger instance and installs it as the
// default logger. Logs go to stderr so command output stays clean on
// stdout.
func New(cfg Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler).With("app", cfg.App)

	slog.SetDefault(logger)
	return logger
}

// parseLevel maps a string to slog.Level.
func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
