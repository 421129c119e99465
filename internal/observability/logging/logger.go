// Package logging configures the structured loggers used across the
// service and propagates request-scoped loggers through the context.
package logging

import (
	"context"
	"log/slog"
	"os"

	"newsdesk/internal/handler/http/requestid"
)

// NewLogger creates a JSON logger. LOG_LEVEL controls verbosity
// (debug, info, warn, error); the default is info.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, handlerOptions()))
}

// NewTextLogger creates a human-readable logger for local development.
func NewTextLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, handlerOptions()))
}

func handlerOptions() *slog.HandlerOptions {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	return &slog.HandlerOptions{
		Level: level,
		// Source locations are only worth the cost when debugging.
		AddSource: level == slog.LevelDebug,
	}
}

func parseLevel(s string) slog.Level {
	switch s {
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

// WithRequestID returns a logger annotated with the request ID from
// the context, when one is present.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}

type contextKey string

const loggerContextKey contextKey = "logger"

// FromContext retrieves the request-scoped logger, falling back to
// slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}
