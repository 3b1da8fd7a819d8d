package sqlite

import (
	"database/sql"

	"github.com/streamsvc/userd/internal/domain"
	"github.com/streamsvc/userd/internal/store"
)

// userCursor adapts sql.Rows to the store.UserCursor interface, decoding one
// row per Next call.
type userCursor struct {
	rows    *sql.Rows
	current *domain.User
	err     error
}

var _ store.UserCursor = (*userCursor)(nil)

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

func (c *userCursor) User() *domain.User {
	return c.current
}

func (c *userCursor) Err() error {
	if c.err != nil {
		return mapError(c.err)
	}
	return mapError(c.rows.Err())
}

// Close releases the underlying result set. It is safe to call more than
// once, and must be called before reusing the connection.
func (c *userCursor) Close() error {
	return c.rows.Close()
}
