package logger

import (
	"context"
	"log/slog"
)

// loggerKey is the context key for the request-scoped logger. An unexported
// struct type guarantees no collisions with keys from other packages.
type loggerKey struct{}

// WithLogger returns a copy of ctx that carries the given logger. Handlers
// and middleware use this to attach request-scoped attributes (such as a
// trace ID) that downstream layers pick up via FromContext.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// FromContext retrieves the logger stored in ctx, falling back to
// slog.Default() when none is present. The result is always usable.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger stored in ctx, or returns
// defaultLogger when none is present. Unlike FromContext it lets the caller
// choose the fallback, which keeps component attributes attached when a
// request-scoped logger has not been injected.
func FromContextOrDefault(ctx context.Context, defaultLogger *slog.Logger) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return defaultLogger
}
