package logger

import (
	"context"
	"log/slog"
)

// loggerContextKey is the private context key for a request-scoped logger.
type loggerContextKey struct{}

// WithLogger returns a new context carrying the given logger.
// Request middleware uses this to propagate a logger enriched with
// request-scoped attributes (trace ID, user ID) into handlers and services.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext retrieves the logger from the context.
// Falls back to slog.Default() when the context carries no logger, so
// callers always get a usable logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the provided default rather than the process-wide default. Components
// that carry their own component-scoped logger prefer this form.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
