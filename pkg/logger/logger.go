// Package logger builds the slog loggers used by stampdesk components.
// The serve command logs JSON in deployments and text during local
// development; level and format come from the logging section of the
// config file.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a logger writing to stderr with the given level and
// format. Format "json" selects JSON output; anything else is text.
func New(level, format string) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter creates a logger writing to w. Tests use it to capture
// output.
func NewWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts))
	default:
		return slog.New(slog.NewTextHandler(w, opts))
	}
}

// ParseLevel maps a config level string to a slog.Level. Matching is
// case-insensitive; unrecognized values fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
