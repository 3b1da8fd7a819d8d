package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/streamsvc/userd/internal/config"
	"github.com/streamsvc/userd/internal/service"
	"github.com/streamsvc/userd/proto/userv1"
	"google.golang.org/grpc"
)

// Server bundles the gRPC server with its listen configuration and exposes
// a small serve/stop lifecycle to the entrypoint.
type Server struct {
	grpc   *grpc.Server
	port   int
	logger *slog.Logger
}

// New assembles the gRPC server: logging interceptors first in the chain,
// then the user service registration.
func New(svc service.UserService, cfg config.ServerConfig, log *slog.Logger) *Server {
	logger := log.With(slog.String("component", "grpc_server"))

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(UnaryLoggingInterceptor(logger)),
		grpc.ChainStreamInterceptor(StreamLoggingInterceptor(logger)),
	)
	userv1.RegisterUserServiceServer(grpcServer, NewUserServer(svc, cfg.StreamBuffer, logger))

	return &Server{
		grpc:   grpcServer,
		port:   cfg.Port,
		logger: logger,
	}
}

// ListenAndServe opens the configured TCP port and serves until the server
// is stopped or the listener fails.
func (s *Server) ListenAndServe() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}
	return s.Serve(lis)
}

// Serve serves on an existing listener. Tests use this with a 127.0.0.1:0
// listener to get an ephemeral port.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("gRPC server listening", slog.String("address", lis.Addr().String()))
	return s.grpc.Serve(lis)
}

// GracefulStop drains in-flight RPCs and then stops the server. If ctx
// expires before draining finishes, open connections are closed forcibly.
func (s *Server) GracefulStop(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("gRPC server stopped")
	case <-ctx.Done():
		s.logger.Warn("graceful stop timed out, forcing stop")
		s.grpc.Stop()
		<-done
	}
}

// Stop closes the server immediately, dropping in-flight RPCs. Intended for
// tests.
func (s *Server) Stop() {
	s.grpc.Stop()
}
