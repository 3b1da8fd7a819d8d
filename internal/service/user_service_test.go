package service_test

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/streamsvc/userd/internal/domain"
	"github.com/streamsvc/userd/internal/mocks"
	"github.com/streamsvc/userd/internal/platform/sqlite"
	"github.com/streamsvc/userd/internal/service"
	"github.com/streamsvc/userd/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newServiceDB opens a throwaway SQLite database so transactional code paths
// run against a real *sql.DB without any external infrastructure.
func newServiceDB(t *testing.T, migrate bool) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "service_test.db"))
	require.NoError(t, err, "Failed to open test database")
	if migrate {
		require.NoError(t, sqlite.Migrate(db, slog.Default()), "Failed to migrate test database")
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestCreateUser(t *testing.T) {
	t.Run("persists and returns the user with an ID", func(t *testing.T) {
		db := newServiceDB(t, true)
		userStore := sqlite.NewSQLiteUserStore(db, nil)
		svc := service.NewUserService(userStore, db, slog.Default())

		user, err := svc.CreateUser(context.Background(), "Ada", "Lovelace")

		require.NoError(t, err, "CreateUser should succeed")
		require.NotNil(t, user, "CreateUser should return the created user")
		assert.Positive(t, user.ID, "The storage-assigned ID should be filled in")
		assert.Equal(t, "Ada", user.Name)
		assert.Equal(t, "Lovelace", user.Surname)

		got, err := svc.GetUserByID(context.Background(), user.ID)
		require.NoError(t, err, "The created user should be retrievable")
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "Ada", got.Name)
		assert.Equal(t, "Lovelace", got.Surname)
	})

	t.Run("rejects blank input before touching storage", func(t *testing.T) {
		created := false
		mockStore := &mocks.MockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				created = true
				return nil
			},
		}
		// The database is never reached on the validation path.
		svc := service.NewUserService(mockStore, nil, slog.Default())

		_, err := svc.CreateUser(context.Background(), "   ", "Lovelace")

		assert.ErrorIs(t, err, service.ErrInvalidInput, "Blank names should be invalid input")
		assert.ErrorIs(t, err, domain.ErrEmptyName, "The domain cause should stay in the chain")
		assert.False(t, created, "Storage should not be touched for invalid input")

		_, err = svc.CreateUser(context.Background(), "Ada", "")
		assert.ErrorIs(t, err, service.ErrInvalidInput, "Blank surnames should be invalid input")
		assert.ErrorIs(t, err, domain.ErrEmptySurname, "The domain cause should stay in the chain")
	})

	t.Run("maps storage failures to ErrInternal", func(t *testing.T) {
		db := newServiceDB(t, false)
		mockStore := &mocks.MockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				return errors.New("disk full")
			},
		}
		svc := service.NewUserService(mockStore, db, slog.Default())

		_, err := svc.CreateUser(context.Background(), "Ada", "Lovelace")

		assert.ErrorIs(t, err, service.ErrInternal, "Unexpected storage errors should map to ErrInternal")
		assert.Contains(t, err.Error(), "disk full", "The cause should stay in the chain for logging")
	})
}

func TestGetUserByID(t *testing.T) {
	t.Run("returns the stored user", func(t *testing.T) {
		mockStore := mocks.NewMockUserStore()
		mockStore.Seed(
			&domain.User{Name: "Ada", Surname: "Lovelace"},
			&domain.User{Name: "Alan", Surname: "Turing"},
		)
		svc := service.NewUserService(mockStore, nil, slog.Default())

		user, err := svc.GetUserByID(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, int32(2), user.ID)
		assert.Equal(t, "Alan", user.Name)
		assert.Equal(t, "Turing", user.Surname)
	})

	t.Run("maps absence to ErrNotFound", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserStore(), nil, slog.Default())

		_, err := svc.GetUserByID(context.Background(), 42)

		assert.ErrorIs(t, err, service.ErrNotFound, "A missing user is ErrNotFound, not an internal fault")
		assert.NotErrorIs(t, err, service.ErrInternal)
	})

	t.Run("rejects non-positive IDs without touching storage", func(t *testing.T) {
		touched := false
		mockStore := &mocks.MockUserStore{
			GetByIDFn: func(ctx context.Context, id int32) (*domain.User, error) {
				touched = true
				return nil, store.ErrUserNotFound
			},
		}
		svc := service.NewUserService(mockStore, nil, slog.Default())

		for _, id := range []int32{0, -7} {
			_, err := svc.GetUserByID(context.Background(), id)
			assert.ErrorIs(t, err, service.ErrInvalidInput, "ID %d should be invalid input", id)
			assert.ErrorIs(t, err, domain.ErrInvalidID)
		}
		assert.False(t, touched, "Storage should not be queried for invalid IDs")
	})

	t.Run("maps storage failures to ErrInternal", func(t *testing.T) {
		mockStore := &mocks.MockUserStore{GetError: errors.New("connection reset")}
		svc := service.NewUserService(mockStore, nil, slog.Default())

		_, err := svc.GetUserByID(context.Background(), 1)

		assert.ErrorIs(t, err, service.ErrInternal)
		assert.NotErrorIs(t, err, service.ErrNotFound)
	})
}

func TestGetUserByName(t *testing.T) {
	t.Run("returns the earliest user with the name", func(t *testing.T) {
		mockStore := mocks.NewMockUserStore()
		mockStore.Seed(
			&domain.User{Name: "Alan", Surname: "Turing"},
			&domain.User{Name: "Alan", Surname: "Kay"},
		)
		svc := service.NewUserService(mockStore, nil, slog.Default())

		user, err := svc.GetUserByName(context.Background(), "Alan")

		require.NoError(t, err)
		assert.Equal(t, int32(1), user.ID, "The lowest ID should win")
		assert.Equal(t, "Turing", user.Surname)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserStore(), nil, slog.Default())

		_, err := svc.GetUserByName(context.Background(), "  ")

		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("maps absence to ErrNotFound", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserStore(), nil, slog.Default())

		_, err := svc.GetUserByName(context.Background(), "nobody")

		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestGetUsers(t *testing.T) {
	t.Run("returns every user in ID order", func(t *testing.T) {
		mockStore := mocks.NewMockUserStore()
		mockStore.Seed(
			&domain.User{Name: "Ada", Surname: "Lovelace"},
			&domain.User{Name: "Alan", Surname: "Turing"},
			&domain.User{Name: "Grace", Surname: "Hopper"},
		)
		svc := service.NewUserService(mockStore, nil, slog.Default())

		users, err := svc.GetUsers(context.Background())

		require.NoError(t, err)
		require.Len(t, users, 3)
		for i, name := range []string{"Ada", "Alan", "Grace"} {
			assert.Equal(t, int32(i+1), users[i].ID)
			assert.Equal(t, name, users[i].Name)
		}
	})

	t.Run("maps storage failures to ErrInternal", func(t *testing.T) {
		mockStore := &mocks.MockUserStore{GetError: errors.New("relation does not exist")}
		svc := service.NewUserService(mockStore, nil, slog.Default())

		_, err := svc.GetUsers(context.Background())

		assert.ErrorIs(t, err, service.ErrInternal)
	})
}

func TestStreamUsers(t *testing.T) {
	t.Run("yields every user in order", func(t *testing.T) {
		mockStore := mocks.NewMockUserStore()
		mockStore.Seed(
			&domain.User{Name: "Ada", Surname: "Lovelace"},
			&domain.User{Name: "Alan", Surname: "Turing"},
		)
		svc := service.NewUserService(mockStore, nil, slog.Default())

		cursor, err := svc.StreamUsers(context.Background())
		require.NoError(t, err, "StreamUsers should open a cursor")
		defer func() {
			require.NoError(t, cursor.Close())
		}()

		var names []string
		for cursor.Next() {
			names = append(names, cursor.User().Name)
		}
		require.NoError(t, cursor.Err(), "Iteration should finish cleanly")
		assert.Equal(t, []string{"Ada", "Alan"}, names)
	})

	t.Run("maps open failures to ErrInternal", func(t *testing.T) {
		mockStore := &mocks.MockUserStore{ListError: errors.New("too many connections")}
		svc := service.NewUserService(mockStore, nil, slog.Default())

		_, err := svc.StreamUsers(context.Background())

		assert.ErrorIs(t, err, service.ErrInternal)
	})

	t.Run("maps mid-stream failures lazily", func(t *testing.T) {
		scripted := mocks.NewMockUserCursor(
			&domain.User{ID: 1, Name: "Ada", Surname: "Lovelace"},
			&domain.User{ID: 2, Name: "Alan", Surname: "Turing"},
			&domain.User{ID: 3, Name: "Grace", Surname: "Hopper"},
		)
		scripted.FailAfter = 2
		scripted.FailWith = errors.New("connection lost mid-scan")

		mockStore := &mocks.MockUserStore{
			ListFn: func(ctx context.Context) (store.UserCursor, error) {
				return scripted, nil
			},
		}
		svc := service.NewUserService(mockStore, nil, slog.Default())

		cursor, err := svc.StreamUsers(context.Background())
		require.NoError(t, err, "The failure must not surface before iteration reaches it")

		var yielded int
		for cursor.Next() {
			yielded++
		}
		assert.Equal(t, 2, yielded, "Rows before the fault should still be yielded")
		assert.ErrorIs(t, cursor.Err(), service.ErrInternal, "The fault should surface in the service taxonomy")
		assert.NoError(t, cursor.Close())
	})
}
