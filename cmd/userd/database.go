package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/streamsvc/userd/internal/platform/postgres"
	"github.com/streamsvc/userd/internal/platform/sqlite"
	"github.com/streamsvc/userd/internal/store"
)

// openDatabase opens the storage backend named by the database URL and runs
// its migrations. postgres:// URLs use the pgx driver; sqlite:// and file:
// URLs use the embedded SQLite driver, which exists for local development
// and tests. The returned store is ready for use.
func openDatabase(databaseURL string, log *slog.Logger) (*sql.DB, store.UserStore, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		db, err := openPostgres(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(db, log); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("database connection established", slog.String("backend", "postgres"))
		return db, postgres.NewPostgresUserStore(db, log), nil

	case strings.HasPrefix(databaseURL, "sqlite://"), strings.HasPrefix(databaseURL, "file:"):
		db, err := sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://"))
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.Migrate(db, log); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("database connection established", slog.String("backend", "sqlite"))
		return db, sqlite.NewSQLiteUserStore(db, log), nil

	default:
		// Echo only the scheme. The full URL may carry credentials and
		// this error ends up in logs and on stderr.
		return nil, nil, fmt.Errorf("unsupported database URL scheme %q", schemeOf(databaseURL))
	}
}

// openPostgres opens a pooled connection and verifies it with a short ping
// so a bad DATABASE_URL fails at startup instead of on the first request.
func openPostgres(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func schemeOf(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil || u.Scheme == "" {
		return "unknown"
	}
	return u.Scheme
}
