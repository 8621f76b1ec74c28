package jsonfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rutuauti/banking-transaction-manager-project/internal/directory/domain"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/logging"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "users.json")
	store := NewStore(path, logging.StdoutLogger)
	require.NoError(t, store.Init())

	return store
}

func TestStore_InitCreatesEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data", "users.json")
	store := NewStore(path, logging.StdoutLogger)

	require.NoError(t, store.Init())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))

	// A second Init must not truncate existing records.
	require.NoError(t, store.CreateUser(t.Context(), domain.User{Username: "alice"}))
	require.NoError(t, store.Init())

	users, err := store.ListUsers(t.Context())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestStore_CreateAndGetUser(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	user := domain.User{
		Username:     "alice",
		PasswordHash: "hash",
		Age:          16,
		Balance:      0,
	}
	require.NoError(t, store.CreateUser(t.Context(), user))

	got, found, err := store.TryGetUser(t.Context(), "alice")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Equal(t, 16, got.Age)

	_, found, err = store.TryGetUser(t.Context(), "bob")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_CreateUser_DuplicateUsername(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	require.NoError(t, store.CreateUser(t.Context(), domain.User{Username: "alice"}))

	err := store.CreateUser(t.Context(), domain.User{Username: "alice"})
	assert.True(t, errors.Is(err, &domain.UsernameTakenError{}))
}

func TestStore_UpdatePassword(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	require.NoError(t, store.CreateUser(t.Context(), domain.User{Username: "alice", PasswordHash: "old"}))
	require.NoError(t, store.UpdatePassword(t.Context(), "alice", "new"))

	got, found, err := store.TryGetUser(t.Context(), "alice")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "new", got.PasswordHash)

	err = store.UpdatePassword(t.Context(), "nobody", "hash")
	assert.True(t, errors.Is(err, &domain.UserNotFoundError{}))
}

func TestStore_ReplaceAll(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	require.NoError(t, store.CreateUser(t.Context(), domain.User{Username: "old"}))

	synced := []domain.User{
		{Username: "alice", Age: 30},
		{Username: "bob", Age: 17},
	}
	require.NoError(t, store.ReplaceAll(t.Context(), synced))

	users, err := store.ListUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "users.json")

	store := NewStore(path, logging.StdoutLogger)
	require.NoError(t, store.Init())
	require.NoError(t, store.CreateUser(t.Context(), domain.User{Username: "alice", Age: 42}))

	reopened := NewStore(path, logging.StdoutLogger)
	got, found, err := reopened.TryGetUser(t.Context(), "alice")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 42, got.Age)
}
