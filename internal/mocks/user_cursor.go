package mocks

import (
	"errors"
	"sync"

	"github.com/streamsvc/userd/internal/domain"
	"github.com/streamsvc/userd/internal/store"
)

// MockUserCursor is a scripted store.UserCursor for testing. It yields the
// configured users in order and can be told to fail partway through, which
// lets tests exercise mid-stream storage faults. All methods are safe for
// use from a goroutine other than the one that built the cursor.
type MockUserCursor struct {
	// FailAfter makes Next report a failure once this many rows have been
	// yielded; a negative value means the cursor never fails.
	FailAfter int

	// FailWith is the error reported after FailAfter rows. Defaults to a
	// generic error when left nil.
	FailWith error

	// CloseErr is returned from every Close call.
	CloseErr error

	mu      sync.Mutex
	users   []*domain.User
	pos     int
	yielded int
	closes  int
	current *domain.User
	err     error
}

// Ensure MockUserCursor implements store.UserCursor interface
var _ store.UserCursor = (*MockUserCursor)(nil)

// NewMockUserCursor creates a cursor that yields the given users and never fails.
func NewMockUserCursor(users ...*domain.User) *MockUserCursor {
	return &MockUserCursor{
		FailAfter: -1,
		users:     users,
	}
}

// Next implements the store.UserCursor interface
func (c *MockUserCursor) Next() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return false
	}

	if c.FailAfter >= 0 && c.yielded >= c.FailAfter {
		c.err = c.FailWith
		if c.err == nil {
			c.err = errors.New("cursor failed")
		}
		return false
	}

	if c.pos >= len(c.users) {
		return false
	}

	c.current = c.users[c.pos]
	c.pos++
	c.yielded++
	return true
}

// User implements the store.UserCursor interface
func (c *MockUserCursor) User() *domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Err implements the store.UserCursor interface
func (c *MockUserCursor) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close implements the store.UserCursor interface
func (c *MockUserCursor) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closes++
	return c.CloseErr
}

// Yielded reports how many rows Next has handed out so far. Tests use it to
// assert that a slow consumer keeps the producer from reading ahead.
func (c *MockUserCursor) Yielded() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yielded
}

// CloseCount reports how many times Close has been called. Tests use it to
// assert the cursor is released exactly once on every path.
func (c *MockUserCursor) CloseCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closes
}
