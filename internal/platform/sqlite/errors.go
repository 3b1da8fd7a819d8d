package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/streamsvc/userd/internal/store"
)

// mapError translates driver errors into the store error taxonomy so callers
// never need to know which backend produced them. SQLite reports constraint
// failures as text, so matching is done on the message.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: foreign key violation: %v", store.ErrInvalidEntity, err)
	case strings.Contains(msg, "CHECK constraint failed"):
		return fmt.Errorf("%w: check constraint violation: %v", store.ErrInvalidEntity, err)
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return fmt.Errorf("%w: not null violation: %v", store.ErrInvalidEntity, err)
	}

	return err
}
