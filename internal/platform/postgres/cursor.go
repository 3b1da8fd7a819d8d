package postgres

import (
	"database/sql"

	"github.com/streamsvc/userd/internal/domain"
	"github.com/streamsvc/userd/internal/store"
)

// userCursor adapts sql.Rows to the store.UserCursor interface. Rows are
// decoded one at a time as the consumer advances, so the full result set is
// never held in memory.
type userCursor struct {
	rows    *sql.Rows
	current *domain.User
	err     error
}

// Ensure userCursor implements store.UserCursor interface
var _ store.UserCursor = (*userCursor)(nil)

// Next advances to the next row. It returns false when the result set is
// exhausted or a row fails to decode; Err distinguishes the two.
func (c *userCursor) Next() bool {
	if c.err != nil {
		return false
	}
	if !c.rows.Next() {
		return false
	}

	var user domain.User
	if err := c.rows.Scan(&user.ID, &user.Name, &user.Surname); err != nil {
		c.err = err
		return false
	}
	c.current = &user
	return true
}

// User returns the row the last successful Next positioned on.
func (c *userCursor) User() *domain.User {
	return c.current
}

// Err returns the first error encountered during iteration, mapped to the
// store error taxonomy, or nil if iteration ended cleanly.
func (c *userCursor) Err() error {
	if c.err != nil {
		return MapError(c.err)
	}
	return MapError(c.rows.Err())
}

// Close releases the underlying result set. It is safe to call more than once.
func (c *userCursor) Close() error {
	return c.rows.Close()
}
