package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/streamsvc/userd/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedError error
		expectedMsg   string
	}{
		{
			name:          "nil_error",
			err:           nil,
			expectedError: nil,
		},
		{
			name:          "sql_no_rows",
			err:           sql.ErrNoRows,
			expectedError: store.ErrNotFound,
		},
		{
			name: "unique_violation",
			err: &pgconn.PgError{
				Code:           uniqueViolationCode,
				ConstraintName: "users_pkey",
			},
			expectedMsg: "entity already exists",
		},
		{
			name: "foreign_key_violation",
			err: &pgconn.PgError{
				Code: foreignKeyViolationCode,
			},
			expectedMsg: "foreign key violation",
		},
		{
			name: "check_constraint_violation",
			err: &pgconn.PgError{
				Code: checkViolationCode,
			},
			expectedMsg: "check constraint violation",
		},
		{
			name: "not_null_violation",
			err: &pgconn.PgError{
				Code:       notNullViolationCode,
				ColumnName: "surname",
			},
			expectedMsg: "not null violation",
		},
		{
			name:          "generic_error",
			err:           errors.New("some other error"),
			expectedError: errors.New("some other error"),
		},
		{
			name: "unknown_pg_code",
			err: &pgconn.PgError{
				Code:    "99999",
				Message: "unknown error",
			},
			expectedError: &pgconn.PgError{
				Code:    "99999",
				Message: "unknown error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MapError(tt.err)

			if tt.expectedError == nil && tt.expectedMsg == "" {
				assert.Nil(t, result)
			} else if tt.expectedMsg != "" {
				require.NotNil(t, result)
				assert.Contains(t, result.Error(), tt.expectedMsg)
				// Check that it wraps the appropriate store error
				if errors.Is(result, store.ErrDuplicate) || errors.Is(result, store.ErrInvalidEntity) {
					// Good - it wraps one of the expected errors
				} else {
					t.Errorf("Expected error to wrap store.ErrDuplicate or store.ErrInvalidEntity")
				}
			} else if errors.Is(tt.expectedError, store.ErrNotFound) {
				assert.ErrorIs(t, result, store.ErrNotFound)
			} else {
				assert.Equal(t, tt.expectedError.Error(), result.Error())
			}
		})
	}
}

func TestMapErrorPreservesCause(t *testing.T) {
	cause := &pgconn.PgError{Code: uniqueViolationCode, Message: "duplicate key value"}
	mapped := MapError(fmt.Errorf("insert user: %w", cause))

	assert.ErrorIs(t, mapped, store.ErrDuplicate, "Mapped error should match the store sentinel")
	assert.Contains(t, mapped.Error(), "duplicate key value", "Original driver message should survive for logs")
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil_error",
			err:      nil,
			expected: false,
		},
		{
			name: "unique_violation",
			err: &pgconn.PgError{
				Code: uniqueViolationCode,
			},
			expected: true,
		},
		{
			name: "other_violation",
			err: &pgconn.PgError{
				Code: foreignKeyViolationCode,
			},
			expected: false,
		},
		{
			name:     "non_pg_error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name: "wrapped_unique_violation",
			err: fmt.Errorf("context: %w", &pgconn.PgError{
				Code: uniqueViolationCode,
			}),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUniqueViolation(tt.err))
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil_error",
			err:      nil,
			expected: false,
		},
		{
			name:     "sql_no_rows",
			err:      sql.ErrNoRows,
			expected: true,
		},
		{
			name:     "store_not_found",
			err:      store.ErrNotFound,
			expected: true,
		},
		{
			name:     "user_not_found",
			err:      store.ErrUserNotFound,
			expected: true,
		},
		{
			name:     "wrapped_no_rows",
			err:      fmt.Errorf("lookup: %w", sql.ErrNoRows),
			expected: true,
		},
		{
			name:     "other_error",
			err:      errors.New("boom"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}
