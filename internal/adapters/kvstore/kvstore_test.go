package kvstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arale275/autix-sub001/internal/adapters/kvstore"
	"github.com/arale275/autix-sub001/internal/apperrors"
	"github.com/arale275/autix-sub001/internal/core/ports"
)

// Both backends must behave identically, so the same suite runs against each.
func stores(t *testing.T) map[string]ports.KVStore {
	t.Helper()
	db, err := kvstore.OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return map[string]ports.KVStore{
		"memory": kvstore.NewMemory(),
		"sqlite": db,
	}
}

func TestGetMissingKey(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "user-1", "favorites")
			assert.ErrorIs(t, err, apperrors.ErrNotFound)
		})
	}
}

func TestSetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, "user-1", "favorites", "[1,2]"))

			got, err := store.Get(ctx, "user-1", "favorites")
			require.NoError(t, err)
			assert.Equal(t, "[1,2]", got)

			require.NoError(t, store.Set(ctx, "user-1", "favorites", "[3]"))
			got, err = store.Get(ctx, "user-1", "favorites")
			require.NoError(t, err)
			assert.Equal(t, "[3]", got)
		})
	}
}

func TestScopesAreIsolated(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, "user-1", "favorites", "[1]"))

			_, err := store.Get(ctx, "user-2", "favorites")
			assert.ErrorIs(t, err, apperrors.ErrNotFound)
		})
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, "user-1", "favorites", "[1]"))
			require.NoError(t, store.Remove(ctx, "user-1", "favorites"))

			_, err := store.Get(ctx, "user-1", "favorites")
			assert.ErrorIs(t, err, apperrors.ErrNotFound)

			// Removing an absent key is fine.
			assert.NoError(t, store.Remove(ctx, "user-1", "favorites"))
		})
	}
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	db, err := kvstore.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Set(ctx, "user-1", "filters:last", `{"status":"new"}`))
	require.NoError(t, db.Close())

	db, err = kvstore.OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()

	got, err := db.Get(ctx, "user-1", "filters:last")
	require.NoError(t, err)
	assert.Equal(t, `{"status":"new"}`, got)
}
