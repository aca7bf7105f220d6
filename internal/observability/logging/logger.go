// Package logging configures the process-wide slog logger and carries the
// request ID into every log line.
package logging

import (
	"context"
	"log/slog"
	"os"

	"newsdesk/internal/handler/http/requestid"
)

// NewLogger builds a JSON logger writing to stdout. The level comes from the
// LOG_LEVEL environment variable (debug, info, warn, error; default info).
// Source locations are attached only at debug level.
func NewLogger() *slog.Logger {
	level := levelFromEnv()
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	return slog.New(handler)
}

// NewTextLogger builds a human-readable logger for local development.
func NewTextLogger() *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	return slog.New(handler)
}

func levelFromEnv() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
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

// WithRequestID attaches the request ID from ctx, when present, so every
// subsequent line from this logger can be correlated with the request.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	id := requestid.FromContext(ctx)
	if id == "" {
		return logger
	}
	return logger.With("request_id", id)
}
