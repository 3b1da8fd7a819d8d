package store

import (
	"context"
	"database/sql"

	"github.com/streamsvc/userd/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and fills in the ID assigned
	// by storage. The caller is responsible for domain validation.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int32) (*domain.User, error)

	// GetByName retrieves a user by name. When several users share the
	// name, the one with the lowest ID is returned.
	// Returns ErrUserNotFound if no user has the name.
	GetByName(ctx context.Context, name string) (*domain.User, error)

	// GetAll retrieves every user in ID order.
	// Returns an empty slice when the store is empty, never nil.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// List opens a cursor over every user in ID order. The result set is
	// not materialized; rows are fetched as the cursor advances. The
	// caller owns the cursor and must Close it on every return path.
	List(ctx context.Context) (UserCursor, error)

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}

// UserCursor iterates over users one row at a time, in the manner of
// database/sql.Rows: call Next until it returns false, then check Err to
// distinguish exhaustion from failure.
type UserCursor interface {
	// Next advances to the next user and reports whether one is available.
	Next() bool

	// User returns the row the last successful Next positioned on.
	User() *domain.User

	// Err returns the first error encountered during iteration, or nil.
	Err() error

	// Close releases the resources held by the cursor. It is safe to call
	// more than once.
	Close() error
}
