package ctxlog

import (
	"context"
	"log/slog"
)

// contextKey is a private type to avoid collisions with other context values.
type contextKey string

const loggerKey = contextKey("logger")

// WithLogger returns a context carrying the given request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromCtx retrieves the request-scoped logger from the context, falling back
// to slog.Default() when none was attached.
func FromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
