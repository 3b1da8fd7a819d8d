package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/streamsvc/userd/internal/domain"
	"github.com/streamsvc/userd/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn    func(ctx context.Context, user *domain.User) error
	GetByIDFn   func(ctx context.Context, id int32) (*domain.User, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.User, error)
	GetAllFn    func(ctx context.Context) ([]*domain.User, error)
	ListFn      func(ctx context.Context) (store.UserCursor, error)
	WithTxFn    func(tx *sql.Tx) store.UserStore

	// Errors returned by the default implementation when set
	CreateError error
	GetError    error
	ListError   error

	// Data for the default in-memory implementation, kept in ID order
	mu     sync.Mutex
	users  []*domain.User
	nextID int32
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{}
}

// Seed inserts users into the in-memory state, assigning sequential IDs.
// It is a convenience for tests that only care about reads.
func (m *MockUserStore) Seed(users ...*domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range users {
		m.nextID++
		user.ID = m.nextID
		m.users = append(m.users, user)
	}
}

// Create implements the store.UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	user.ID = m.nextID
	m.users = append(m.users, user)
	return nil
}

// GetByID implements the store.UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByName implements the store.UserStore interface
func (m *MockUserStore) GetByName(ctx context.Context, name string) (*domain.User, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// The slice is in ID order, so the first match has the lowest ID.
	for _, user := range m.users {
		if user.Name == name {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetAll implements the store.UserStore interface
func (m *MockUserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]*domain.User, len(m.users))
	copy(users, m.users)
	return users, nil
}

// List implements the store.UserStore interface
func (m *MockUserStore) List(ctx context.Context) (store.UserCursor, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]*domain.User, len(m.users))
	copy(users, m.users)
	return NewMockUserCursor(users...), nil
}

// WithTx implements the store.UserStore interface
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	if m.WithTxFn != nil {
		return m.WithTxFn(tx)
	}
	return m
}
