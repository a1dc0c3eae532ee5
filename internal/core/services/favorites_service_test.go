package services_test

import (
	"context"
	"testing"

	"github.com/arale275/autix-sub001/internal/adapters/kvstore"
	"github.com/arale275/autix-sub001/internal/core/filtering"
	"github.com/arale275/autix-sub001/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesToggleAndList(t *testing.T) {
	ctx := context.Background()
	svc := services.NewFavoritesService(kvstore.NewMemory())
	userID := uuid.NewString()

	ids, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, ids, "no favorites stored yet")

	added, err := svc.Toggle(ctx, userID, 42)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = svc.Toggle(ctx, userID, 7)
	require.NoError(t, err)
	assert.True(t, added)

	ids, err = svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []int64{42, 7}, ids)

	fav, err := svc.IsFavorite(ctx, userID, 42)
	require.NoError(t, err)
	assert.True(t, fav)

	// Toggling again removes.
	added, err = svc.Toggle(ctx, userID, 42)
	require.NoError(t, err)
	assert.False(t, added)

	fav, err = svc.IsFavorite(ctx, userID, 42)
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestFavoritesAreScopedPerUser(t *testing.T) {
	ctx := context.Background()
	svc := services.NewFavoritesService(kvstore.NewMemory())
	alice := uuid.NewString()
	bob := uuid.NewString()

	_, err := svc.Toggle(ctx, alice, 1)
	require.NoError(t, err)

	ids, err := svc.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, ids, "favorites must not leak between users")
}

func TestLastFilterRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := services.NewFavoritesService(kvstore.NewMemory())
	userID := uuid.NewString()

	_, ok, err := svc.LastFilter(ctx, userID)
	require.NoError(t, err)
	assert.False(t, ok)

	spec := filtering.Spec{Status: "new", DateRange: "week", SortBy: "createdAt", SortOrder: "desc"}
	require.NoError(t, svc.SaveLastFilter(ctx, userID, spec))

	got, ok, err := svc.LastFilter(ctx, userID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, spec, got)
}
