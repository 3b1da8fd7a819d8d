//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/streamsvc/userd/internal/domain"
	"github.com/streamsvc/userd/internal/platform/postgres"
	"github.com/streamsvc/userd/internal/store"
	"github.com/streamsvc/userd/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 5 * time.Second

// mustCreateUser constructs and persists a user, failing the test on any error.
func mustCreateUser(
	ctx context.Context,
	t *testing.T,
	s store.UserStore,
	name, surname string,
) *domain.User {
	t.Helper()

	user, err := domain.NewUser(name, surname)
	require.NoError(t, err, "Failed to construct user")
	require.NoError(t, s.Create(ctx, user), "Failed to create user")
	return user
}

// clearUsers empties the users table within the current transaction so the
// test observes a deterministic data set. The delete is rolled back with
// everything else.
func clearUsers(ctx context.Context, t *testing.T, tx *sql.Tx) {
	t.Helper()

	_, err := tx.ExecContext(ctx, "DELETE FROM users")
	require.NoError(t, err, "Failed to clear users table")
}

// TestPostgresUserStore_Create tests the Create method
func TestPostgresUserStore_Create(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)
	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewPostgresUserStore(tx, nil)

		t.Run("Assigns an ID and round-trips", func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
			defer cancel()

			user := mustCreateUser(ctx, t, userStore, "Ada", "Lovelace")
			assert.Positive(t, user.ID, "Create should fill in the assigned ID")

			got, err := userStore.GetByID(ctx, user.ID)
			require.NoError(t, err, "User retrieval should succeed")
			require.NotNil(t, got, "User should not be nil")
			assert.Equal(t, user.ID, got.ID, "User ID should match")
			assert.Equal(t, "Ada", got.Name, "User name should match")
			assert.Equal(t, "Lovelace", got.Surname, "User surname should match")
		})

		t.Run("Duplicate names are allowed", func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
			defer cancel()

			first := mustCreateUser(ctx, t, userStore, "Alan", "Turing")
			second := mustCreateUser(ctx, t, userStore, "Alan", "Turing")
			assert.NotEqual(t, first.ID, second.ID, "Each create should get its own ID")
		})

		t.Run("Rejects a blank name", func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
			defer cancel()

			err := userStore.Create(ctx, &domain.User{Name: "  ", Surname: "Turing"})
			assert.ErrorIs(t, err, domain.ErrEmptyName, "Should surface the domain validation error")
		})
	})
}

// TestPostgresUserStore_GetByID tests the GetByID method
func TestPostgresUserStore_GetByID(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)
	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewPostgresUserStore(tx, nil)

		t.Run("Non-existent user", func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
			defer cancel()

			user, err := userStore.GetByID(ctx, 1<<30)
			assert.ErrorIs(t, err, store.ErrUserNotFound, "Should return ErrUserNotFound")
			assert.ErrorIs(t, err, store.ErrNotFound, "ErrUserNotFound should wrap the generic sentinel")
			assert.Nil(t, user, "User should be nil for non-existent ID")
		})
	})
}

// TestPostgresUserStore_GetByName tests the GetByName method
func TestPostgresUserStore_GetByName(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)
	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewPostgresUserStore(tx, nil)

		t.Run("Successful retrieval", func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
			defer cancel()

			created := mustCreateUser(ctx, t, userStore, "Grace", "Hopper")

			got, err := userStore.GetByName(ctx, "Grace")
			require.NoError(t, err, "User retrieval should succeed")
			require.NotNil(t, got, "User should not be nil")
			assert.Equal(t, created.ID, got.ID, "User ID should match")
			assert.Equal(t, "Hopper", got.Surname, "User surname should match")
		})

		t.Run("Lowest ID wins on duplicate names", func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
			defer cancel()

			first := mustCreateUser(ctx, t, userStore, "Edsger", "Dijkstra")
			mustCreateUser(ctx, t, userStore, "Edsger", "Wybe")

			got, err := userStore.GetByName(ctx, "Edsger")
			require.NoError(t, err, "User retrieval should succeed")
			assert.Equal(t, first.ID, got.ID, "The earliest user with the name should be returned")
			assert.Equal(t, "Dijkstra", got.Surname, "The earliest user's surname should be returned")
		})

		t.Run("Non-existent user", func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
			defer cancel()

			user, err := userStore.GetByName(ctx, "nobody-has-this-name")
			assert.ErrorIs(t, err, store.ErrUserNotFound, "Should return ErrUserNotFound")
			assert.Nil(t, user, "User should be nil for non-existent name")
		})
	})
}

// TestPostgresUserStore_GetAll tests the GetAll method
func TestPostgresUserStore_GetAll(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)
	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewPostgresUserStore(tx, nil)

		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		clearUsers(ctx, t, tx)

		t.Run("Empty table yields an empty slice", func(t *testing.T) {
			users, err := userStore.GetAll(ctx)
			require.NoError(t, err, "GetAll should succeed on an empty table")
			require.NotNil(t, users, "GetAll should never return nil")
			assert.Empty(t, users, "No users should be returned")
		})

		t.Run("Returns every user in ID order", func(t *testing.T) {
			ada := mustCreateUser(ctx, t, userStore, "Ada", "Lovelace")
			alan := mustCreateUser(ctx, t, userStore, "Alan", "Turing")
			grace := mustCreateUser(ctx, t, userStore, "Grace", "Hopper")

			users, err := userStore.GetAll(ctx)
			require.NoError(t, err, "GetAll should succeed")
			require.Len(t, users, 3, "Every stored user should be returned")
			assert.Equal(t, ada.ID, users[0].ID, "Users should come back in ID order")
			assert.Equal(t, alan.ID, users[1].ID, "Users should come back in ID order")
			assert.Equal(t, grace.ID, users[2].ID, "Users should come back in ID order")
		})
	})
}

// TestPostgresUserStore_List tests the lazy cursor returned by List
func TestPostgresUserStore_List(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)
	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		userStore := postgres.NewPostgresUserStore(tx, nil)

		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		clearUsers(ctx, t, tx)

		t.Run("Empty table yields an exhausted cursor", func(t *testing.T) {
			cursor, err := userStore.List(ctx)
			require.NoError(t, err, "List should succeed on an empty table")

			assert.False(t, cursor.Next(), "Next should report no rows")
			assert.NoError(t, cursor.Err(), "An empty result set is not an error")
			assert.NoError(t, cursor.Close(), "Close should succeed")
		})

		t.Run("Drains every user in ID order", func(t *testing.T) {
			want := []*domain.User{
				mustCreateUser(ctx, t, userStore, "Ada", "Lovelace"),
				mustCreateUser(ctx, t, userStore, "Alan", "Turing"),
				mustCreateUser(ctx, t, userStore, "Grace", "Hopper"),
				mustCreateUser(ctx, t, userStore, "Edsger", "Dijkstra"),
				mustCreateUser(ctx, t, userStore, "Barbara", "Liskov"),
			}

			cursor, err := userStore.List(ctx)
			require.NoError(t, err, "List should succeed")

			var got []*domain.User
			for cursor.Next() {
				got = append(got, cursor.User())
			}
			require.NoError(t, cursor.Err(), "Iteration should finish cleanly")
			require.NoError(t, cursor.Close(), "Close should succeed")

			require.Len(t, got, len(want), "The cursor should yield every stored user")
			for i := range want {
				assert.Equal(t, want[i].ID, got[i].ID, "Row %d should arrive in ID order", i)
				assert.Equal(t, want[i].Name, got[i].Name, "Row %d name should match", i)
				assert.Equal(t, want[i].Surname, got[i].Surname, "Row %d surname should match", i)
			}

			// Close must be idempotent and must release the connection so
			// the transaction can keep working.
			assert.NoError(t, cursor.Close(), "A second Close should be a no-op")

			var count int
			err = tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
			require.NoError(t, err, "The transaction should be usable after Close")
			assert.Equal(t, len(want), count, "Row count should match the drained cursor")
		})
	})
}

// TestPostgresUserStore_ListReleasesConnection verifies a cursor abandoned
// mid-iteration does not pin its pooled connection. It must not run in
// parallel: the cursor has to outlive a transaction, so the seeded rows are
// committed for real, and the transactional tests assume only their own
// writes are visible.
func TestPostgresUserStore_ListReleasesConnection(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	userStore := postgres.NewPostgresUserStore(db, nil)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	for i := 0; i < 20; i++ {
		mustCreateUser(ctx, t, userStore, "Cursor", fmt.Sprintf("Holder-%02d", i))
	}
	t.Cleanup(func() {
		_, err := db.Exec("DELETE FROM users WHERE name = 'Cursor'")
		assert.NoError(t, err, "Failed to clean up seeded users")
	})

	cursor, err := userStore.List(ctx)
	require.NoError(t, err, "List should succeed")

	for i := 0; i < 3; i++ {
		require.True(t, cursor.Next(), "Expected at least 3 rows before abandoning the cursor")
	}
	assert.Equal(t, 1, db.Stats().InUse, "An open cursor should hold exactly one connection")

	require.NoError(t, cursor.Close(), "Close should succeed mid-iteration")

	require.Eventually(t, func() bool { return db.Stats().InUse == 0 },
		2*time.Second, 10*time.Millisecond,
		"The cursor's connection should return to the pool after Close")
}

// TestPostgresUserStore_WithTx verifies that a store bound to a transaction
// sees its own writes while a store on the base connection does not.
func TestPostgresUserStore_WithTx(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)
	baseStore := postgres.NewPostgresUserStore(db, nil)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		txStore := baseStore.WithTx(tx)

		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		user := mustCreateUser(ctx, t, txStore, "Katherine", "Johnson")

		got, err := txStore.GetByID(ctx, user.ID)
		require.NoError(t, err, "The transaction should see its own write")
		assert.Equal(t, user.ID, got.ID, "User ID should match")

		_, err = baseStore.GetByID(ctx, user.ID)
		assert.ErrorIs(t, err, store.ErrUserNotFound,
			"An uncommitted write should not be visible outside the transaction")
	})
}
