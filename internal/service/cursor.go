package service

import (
	"github.com/streamsvc/userd/internal/domain"
	"github.com/streamsvc/userd/internal/store"
)

// normalizedCursor wraps a store cursor so iteration errors surface in the
// service taxonomy instead of leaking storage detail to the transport layer.
// The mapping happens lazily, when Err is consulted, since rows may keep
// flowing long after the cursor was opened.
type normalizedCursor struct {
	inner store.UserCursor
}

var _ store.UserCursor = (*normalizedCursor)(nil)

func (c *normalizedCursor) Next() bool {
	return c.inner.Next()
}

func (c *normalizedCursor) User() *domain.User {
	return c.inner.User()
}

func (c *normalizedCursor) Err() error {
	if err := c.inner.Err(); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (c *normalizedCursor) Close() error {
	return c.inner.Close()
}
