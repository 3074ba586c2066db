//go:build amd64 || ppc64 || ppc64le

package main

import (
	"fmt"
	"log/slog"
	"os"
)

// setupLogger builds the process logger. Logs go to stderr so the report on
// stdout stays clean.
func setupLogger(level, format string) *slog.Logger {
	return slog.New(handlerForFormat(format, parseLogLevel(level)))
}

func handlerForFormat(format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case "json":
		return slog.NewJSONHandler(os.Stderr, opts)
	case "text":
		return slog.NewTextHandler(os.Stderr, opts)
	default:
		// Unreachable with the flag enum, but kept for direct callers.
		panic(fmt.Sprintf("invalid format: %s", format))
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
