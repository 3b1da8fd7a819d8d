package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/streamsvc/userd/internal/platform/logger"
)

// beginOp scopes the context logger to a named operation and returns the
// updated context together with a finish function. Deeper layers picking the
// logger out of the context inherit the operation attribute, so one request's
// log lines correlate without any shared mutable state.
//
// The finish function logs the operation outcome exactly once; pass it the
// address of the method's named error return so the deferred call observes
// the final value.
func beginOp(ctx context.Context, fallback *slog.Logger, op string) (context.Context, func(errp *error)) {
	log := logger.FromContextOrDefault(ctx, fallback).With(slog.String("operation", op))
	ctx = logger.WithLogger(ctx, log)

	start := time.Now()
	log.Debug("operation started")

	finish := func(errp *error) {
		elapsed := time.Since(start)
		if errp != nil && *errp != nil {
			log.Debug("operation failed",
				slog.String("error", (*errp).Error()),
				slog.Duration("elapsed", elapsed))
			return
		}
		log.Debug("operation completed", slog.Duration("elapsed", elapsed))
	}

	return ctx, finish
}
