// Package ops serves the operational HTTP endpoints: a liveness probe and a
// readiness probe that checks the database. It runs beside the gRPC server
// on its own port so infrastructure can probe the process without speaking
// gRPC.
package ops

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// readinessTimeout bounds how long a readiness probe may hold a database
// connection.
const readinessTimeout = 2 * time.Second

// Pinger is the dependency readiness probes check. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server is the operational HTTP server.
type Server struct {
	http   *http.Server
	logger *slog.Logger
}

// New configures the ops server on the given port. The db is only ever
// pinged, never queried.
func New(port int, db Pinger, log *slog.Logger) *Server {
	logger := log.With(slog.String("component", "ops_server"))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", "error", err)
		}
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Warn("readiness check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			if _, err := w.Write([]byte("database unavailable")); err != nil {
				logger.Error("failed to write readiness response", "error", err)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write readiness response", "error", err)
		}
	})

	return &Server{
		http: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		},
		logger: logger,
	}
}

// Handler exposes the route tree, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe serves until Shutdown is called or the listener fails.
// A server closed by Shutdown reports no error.
func (s *Server) ListenAndServe() error {
	s.logger.Info("ops server listening", slog.String("address", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ops server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight probe requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
