package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/streamsvc/userd/internal/platform/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryLoggingInterceptor assigns each unary request a trace ID, stores a
// request-scoped logger in the context, and logs the outcome with status
// code and duration. It should be installed first in the interceptor chain
// so every downstream layer picks up the trace ID via logger.FromContext.
func UnaryLoggingInterceptor(base *slog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		log := base.With(
			slog.String("trace_id", uuid.NewString()),
			slog.String("method", info.FullMethod),
		)
		ctx = logger.WithLogger(ctx, log)

		start := time.Now()
		log.Debug("request started")

		resp, err := handler(ctx, req)

		logOutcome(log, "request", status.Code(err), time.Since(start), err)
		return resp, err
	}
}

// StreamLoggingInterceptor is the streaming counterpart of
// UnaryLoggingInterceptor. The wrapped stream carries the enriched context,
// so handlers reading stream.Context() see the same logger.
func StreamLoggingInterceptor(base *slog.Logger) grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		log := base.With(
			slog.String("trace_id", uuid.NewString()),
			slog.String("method", info.FullMethod),
		)
		ctx := logger.WithLogger(ss.Context(), log)

		start := time.Now()
		log.Debug("stream started")

		err := handler(srv, &wrappedServerStream{ServerStream: ss, ctx: ctx})

		logOutcome(log, "stream", status.Code(err), time.Since(start), err)
		return err
	}
}

// logOutcome writes the single end-of-call log line. Client-caused failures
// stay at Info so expected conditions (absent users, bad arguments, client
// cancellation) do not pollute the error stream.
func logOutcome(log *slog.Logger, kind string, code codes.Code, elapsed time.Duration, err error) {
	attrs := []any{
		slog.String("code", code.String()),
		slog.Duration("elapsed", elapsed),
	}
	if err == nil {
		log.Info(kind+" completed", attrs...)
		return
	}

	attrs = append(attrs, slog.String("error", err.Error()))
	if code == codes.Internal || code == codes.Unknown {
		log.Error(kind+" failed", attrs...)
		return
	}
	log.Info(kind+" failed", attrs...)
}

// wrappedServerStream overrides the embedded stream's context so interceptors
// can hand request-scoped values to streaming handlers.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}
