// Package logger provides structured logging for the server.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"skillswap_server/config"
)

// Setup builds a JSON logger on stdout at the configured level and installs
// it as the slog default.
func Setup(cfg config.ServerConfig) *slog.Logger {
	logger := New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)
	return logger
}

// New creates a JSON logger writing to w. Unknown levels fall back to info.
func New(w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a configured level name (case-insensitive) to a slog level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
