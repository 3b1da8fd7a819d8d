package mocks

import (
	"context"

	"github.com/streamsvc/userd/internal/domain"
	"github.com/streamsvc/userd/internal/service"
	"github.com/streamsvc/userd/internal/store"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	// CreateUserFn allows test cases to mock the CreateUser behavior
	CreateUserFn func(ctx context.Context, name, surname string) (*domain.User, error)

	// GetUserByIDFn allows test cases to mock the GetUserByID behavior
	GetUserByIDFn func(ctx context.Context, id int32) (*domain.User, error)

	// GetUserByNameFn allows test cases to mock the GetUserByName behavior
	GetUserByNameFn func(ctx context.Context, name string) (*domain.User, error)

	// GetUsersFn allows test cases to mock the GetUsers behavior
	GetUsersFn func(ctx context.Context) ([]*domain.User, error)

	// StreamUsersFn allows test cases to mock the StreamUsers behavior
	StreamUsersFn func(ctx context.Context) (store.UserCursor, error)

	// Default values used when functions aren't explicitly defined
	User   *domain.User
	Users  []*domain.User
	Cursor store.UserCursor
	Err    error
}

// Ensure MockUserService implements service.UserService interface
var _ service.UserService = (*MockUserService)(nil)

// CreateUser implements the service.UserService interface
func (m *MockUserService) CreateUser(ctx context.Context, name, surname string) (*domain.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, name, surname)
	}
	return m.User, m.Err
}

// GetUserByID implements the service.UserService interface
func (m *MockUserService) GetUserByID(ctx context.Context, id int32) (*domain.User, error) {
	if m.GetUserByIDFn != nil {
		return m.GetUserByIDFn(ctx, id)
	}
	return m.User, m.Err
}

// GetUserByName implements the service.UserService interface
func (m *MockUserService) GetUserByName(ctx context.Context, name string) (*domain.User, error) {
	if m.GetUserByNameFn != nil {
		return m.GetUserByNameFn(ctx, name)
	}
	return m.User, m.Err
}

// GetUsers implements the service.UserService interface
func (m *MockUserService) GetUsers(ctx context.Context) ([]*domain.User, error) {
	if m.GetUsersFn != nil {
		return m.GetUsersFn(ctx)
	}
	return m.Users, m.Err
}

// StreamUsers implements the service.UserService interface
func (m *MockUserService) StreamUsers(ctx context.Context) (store.UserCursor, error) {
	if m.StreamUsersFn != nil {
		return m.StreamUsersFn(ctx)
	}
	return m.Cursor, m.Err
}
