package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/streamsvc/userd/internal/domain"
	"github.com/streamsvc/userd/internal/platform/logger"
	"github.com/streamsvc/userd/internal/store"
)

// SQLiteUserStore implements the store.UserStore interface using a SQLite
// database as the storage backend. It mirrors the PostgreSQL implementation
// so the two are interchangeable behind the interface.
type SQLiteUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSQLiteUserStore creates a new SQLite implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewSQLiteUserStore(db store.DBTX, logger *slog.Logger) *SQLiteUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SQLiteUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure SQLiteUserStore implements store.UserStore interface
var _ store.UserStore = (*SQLiteUserStore)(nil)

// Create implements store.UserStore.Create
// It inserts the user and fills in the ID assigned by the database.
func (s *SQLiteUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO users (name, surname) VALUES (?, ?)`,
		user.Name, user.Surname,
	)
	if err != nil {
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("name", user.Name))
		return mapError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	user.ID = int32(id)

	log.Info("user created successfully",
		slog.Int("user_id", int(user.ID)),
		slog.String("name", user.Name))
	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *SQLiteUserStore) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user := &domain.User{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, surname FROM users WHERE id = ?`, id,
	).Scan(&user.ID, &user.Name, &user.Surname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.Int("user_id", int(id)))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int("user_id", int(id)))
		return nil, mapError(err)
	}

	return user, nil
}

// GetByName implements store.UserStore.GetByName
// When several users share the name, the one with the lowest ID wins.
// Returns store.ErrUserNotFound if no user has the name.
func (s *SQLiteUserStore) GetByName(ctx context.Context, name string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user := &domain.User{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, surname FROM users WHERE name = ? ORDER BY id LIMIT 1`, name,
	).Scan(&user.ID, &user.Name, &user.Surname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("name", name))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by name",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, mapError(err)
	}

	return user, nil
}

// GetAll implements store.UserStore.GetAll
// It retrieves every user in ID order, materialized into a single slice.
// Returns an empty slice when the table is empty, never nil.
func (s *SQLiteUserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, surname FROM users ORDER BY id`,
	)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	users := []*domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Surname); err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	log.Debug("retrieved all users", slog.Int("count", len(users)))
	return users, nil
}

// List implements store.UserStore.List
// The returned cursor reads rows lazily; the caller must Close it on every
// return path. With SQLite's single connection, an open cursor blocks other
// queries until it is closed.
func (s *SQLiteUserStore) List(ctx context.Context) (store.UserCursor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, surname FROM users ORDER BY id`,
	)
	if err != nil {
		log.Error("failed to open user cursor", slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	log.Debug("opened user cursor")
	return &userCursor{rows: rows}, nil
}

// WithTx implements store.UserStore.WithTx
// It returns a UserStore that runs every operation on the given transaction.
func (s *SQLiteUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &SQLiteUserStore{
		db:     tx,
		logger: s.logger,
	}
}
