package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/streamsvc/userd/internal/config"
	"github.com/streamsvc/userd/internal/ops"
	"github.com/streamsvc/userd/internal/platform/logger"
	"github.com/streamsvc/userd/internal/redact"
	"github.com/streamsvc/userd/internal/server"
	"github.com/streamsvc/userd/internal/service"
)

// shutdownTimeout bounds how long in-flight requests and open streams may
// run after a termination signal before the server stops them forcefully.
const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the user service",
	Long: `Start the gRPC server and, when configured, the HTTP operations
listener for health and readiness probes.

Configuration comes from the environment: DATABASE_URL selects the storage
backend and USERD_* variables override the defaults.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Int("stream_buffer", cfg.Server.StreamBuffer),
		slog.String("database_url", redact.URL(cfg.Database.URL)))

	db, userStore, err := openDatabase(cfg.Database.URL, log)
	if err != nil {
		log.Error("failed to initialize database", slog.String("error", redact.Error(err)))
		return fmt.Errorf("failed to initialize database: %s", redact.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	svc := service.NewUserService(userStore, db, log)
	grpcServer := server.New(svc, cfg.Server, log)

	var opsServer *ops.Server
	if cfg.Ops.Port > 0 {
		opsServer = ops.New(cfg.Ops.Port, db, log)
	}

	g, gctx := errgroup.WithContext(cmd.Context())

	g.Go(grpcServer.ListenAndServe)
	if opsServer != nil {
		g.Go(opsServer.ListenAndServe)
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		grpcServer.GracefulStop(shutdownCtx)
		if opsServer != nil {
			if err := opsServer.Shutdown(shutdownCtx); err != nil {
				log.Error("failed to shut down ops server", slog.String("error", err.Error()))
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", slog.String("error", err.Error()))
		return err
	}

	log.Info("shutdown complete")
	return nil
}
