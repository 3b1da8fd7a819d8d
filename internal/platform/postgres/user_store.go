package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/streamsvc/userd/internal/domain"
	"github.com/streamsvc/userd/internal/platform/logger"
	"github.com/streamsvc/userd/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
// It inserts the user and fills in the ID assigned by the database.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO users (name, surname)
		VALUES ($1, $2)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, user.Name, user.Surname).Scan(&user.ID)
	if err != nil {
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("name", user.Name))
		return MapError(err)
	}

	log.Info("user created successfully",
		slog.Int("user_id", int(user.ID)),
		slog.String("name", user.Name))
	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving user by ID", slog.Int("user_id", int(id)))

	query := `
		SELECT id, name, surname
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Name, &user.Surname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.Int("user_id", int(id)))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int("user_id", int(id)))
		return nil, MapError(err)
	}

	return &user, nil
}

// GetByName implements store.UserStore.GetByName
// When several users share the name, the one with the lowest ID wins.
// Returns store.ErrUserNotFound if no user has the name.
func (s *PostgresUserStore) GetByName(ctx context.Context, name string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving user by name", slog.String("name", name))

	query := `
		SELECT id, name, surname
		FROM users
		WHERE name = $1
		ORDER BY id
		LIMIT 1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, name).Scan(&user.ID, &user.Name, &user.Surname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("name", name))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by name",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, MapError(err)
	}

	return &user, nil
}

// GetAll implements store.UserStore.GetAll
// It retrieves every user in ID order, materialized into a single slice.
// Returns an empty slice when the table is empty, never nil.
func (s *PostgresUserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, surname
		FROM users
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		err := rows.Close()
		if err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Surname); err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	// Return empty slice instead of nil if no users found
	if users == nil {
		users = []*domain.User{}
	}

	log.Debug("retrieved all users", slog.Int("count", len(users)))
	return users, nil
}

// List implements store.UserStore.List
// The returned cursor reads rows lazily from a live result set, so the
// caller must Close it on every return path or the connection will leak.
func (s *PostgresUserStore) List(ctx context.Context) (store.UserCursor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, surname
		FROM users
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to open user cursor", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("opened user cursor")
	return &userCursor{rows: rows}, nil
}

// WithTx implements store.UserStore.WithTx
// It returns a UserStore that runs every operation on the given transaction.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}
