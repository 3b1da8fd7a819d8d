package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/streamsvc/userd/internal/domain"
	"github.com/streamsvc/userd/internal/platform/logger"
	"github.com/streamsvc/userd/internal/store"
)

// UserService provides the application-level operations on the user resource.
type UserService interface {
	// CreateUser validates and persists a new user, returning it with the
	// storage-assigned ID filled in.
	CreateUser(ctx context.Context, name, surname string) (*domain.User, error)

	// GetUserByID retrieves a user by their ID.
	// Returns ErrNotFound if no user has the ID.
	GetUserByID(ctx context.Context, id int32) (*domain.User, error)

	// GetUserByName retrieves a user by name. When several users share the
	// name, the one with the lowest ID is returned.
	// Returns ErrNotFound if no user has the name.
	GetUserByName(ctx context.Context, name string) (*domain.User, error)

	// GetUsers retrieves every user in ID order, materialized into a slice.
	GetUsers(ctx context.Context) ([]*domain.User, error)

	// StreamUsers opens a cursor over every user in ID order. Rows are read
	// lazily as the caller advances, so the full set is never held in
	// memory. The caller must Close the cursor on every return path.
	StreamUsers(ctx context.Context) (store.UserCursor, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
	db        *sql.DB
}

// NewUserService creates a new UserService
func NewUserService(userStore store.UserStore, db *sql.DB, logger *slog.Logger) UserService {
	return &UserServiceImpl{
		userStore: userStore,
		db:        db,
		logger:    logger.With("component", "user_service"),
	}
}

// CreateUser validates and persists a new user.
// Uses a transaction to ensure atomicity of the operation.
func (s *UserServiceImpl) CreateUser(ctx context.Context, name, surname string) (user *domain.User, err error) {
	ctx, finish := beginOp(ctx, s.logger, "create_user")
	defer finish(&err)
	log := logger.FromContext(ctx)

	user, err = domain.NewUser(name, surname)
	if err != nil {
		log.Debug("rejected invalid user input", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// Use a transaction for the user creation
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		// Get a transaction-aware store
		txStore := s.userStore.WithTx(tx)

		// Create the user within the transaction
		return txStore.Create(ctx, user)
	})
	if err != nil {
		log.Error("failed to save user to database",
			"error", err,
			"name", name)
		return nil, mapStoreError(err)
	}

	log.Info("user created successfully",
		"user_id", user.ID,
		"name", user.Name)

	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *UserServiceImpl) GetUserByID(ctx context.Context, id int32) (user *domain.User, err error) {
	ctx, finish := beginOp(ctx, s.logger, "get_user_by_id")
	defer finish(&err)
	log := logger.FromContext(ctx)

	if id <= 0 {
		log.Debug("rejected non-positive user id", "user_id", id)
		return nil, fmt.Errorf("%w: %w: got %d", ErrInvalidInput, domain.ErrInvalidID, id)
	}

	user, err = s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("user not found", "user_id", id)
		} else {
			log.Error("failed to retrieve user",
				"error", err,
				"user_id", id)
		}
		return nil, mapStoreError(err)
	}

	log.Debug("retrieved user successfully", "user_id", user.ID)

	return user, nil
}

// GetUserByName retrieves a user by name, preferring the lowest ID when the
// name is shared.
func (s *UserServiceImpl) GetUserByName(ctx context.Context, name string) (user *domain.User, err error) {
	ctx, finish := beginOp(ctx, s.logger, "get_user_by_name")
	defer finish(&err)
	log := logger.FromContext(ctx)

	if strings.TrimSpace(name) == "" {
		log.Debug("rejected empty name")
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrEmptyName)
	}

	user, err = s.userStore.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("user not found by name", "name", name)
		} else {
			log.Error("failed to retrieve user by name",
				"error", err,
				"name", name)
		}
		return nil, mapStoreError(err)
	}

	log.Debug("retrieved user by name successfully",
		"user_id", user.ID,
		"name", user.Name)

	return user, nil
}

// GetUsers retrieves every user in ID order.
func (s *UserServiceImpl) GetUsers(ctx context.Context) (users []*domain.User, err error) {
	ctx, finish := beginOp(ctx, s.logger, "get_users")
	defer finish(&err)
	log := logger.FromContext(ctx)

	users, err = s.userStore.GetAll(ctx)
	if err != nil {
		log.Error("failed to retrieve users", "error", err)
		return nil, mapStoreError(err)
	}

	log.Debug("retrieved users", "count", len(users))

	return users, nil
}

// StreamUsers opens a cursor over every user. The returned cursor reports
// iteration failures in the service error taxonomy; callers own it and must
// Close it on every return path.
func (s *UserServiceImpl) StreamUsers(ctx context.Context) (cursor store.UserCursor, err error) {
	ctx, finish := beginOp(ctx, s.logger, "stream_users")
	defer finish(&err)
	log := logger.FromContext(ctx)

	inner, err := s.userStore.List(ctx)
	if err != nil {
		log.Error("failed to open user stream", "error", err)
		return nil, mapStoreError(err)
	}

	log.Debug("user stream opened")

	return &normalizedCursor{inner: inner}, nil
}
