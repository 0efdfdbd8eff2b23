// Package logger builds the slog.Logger shared by the offerdesk binaries.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a logger writing to stderr. Level is one of "debug", "info",
// "warn", "error"; format is "json" or "text". Unrecognized values fall back
// to info/text.
func New(level, format string) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter is New with a caller-supplied destination, mostly for
// capturing output in tests.
func NewWithWriter(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a config string to a slog.Level. "warning" is accepted as
// an alias for "warn"; anything unrecognized means info.
func ParseLevel(level string) slog.Level {
	switch level {
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
