package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/arale275/autix-sub001/internal/apperrors"
	"github.com/arale275/autix-sub001/internal/core/filtering"
	"github.com/arale275/autix-sub001/internal/core/ports"
)

const (
	favoritesKey  = "favorites:cars"
	lastFilterKey = "filters:last"
)

// FavoritesService keeps per-user favorites and the last-used filter spec in
// the injected key-value store. Any backend satisfying ports.KVStore works;
// tests use the in-memory one.
type FavoritesService struct {
	BaseService
	kv ports.KVStore
}

// NewFavoritesService creates a favorites service over the given store.
func NewFavoritesService(kv ports.KVStore) *FavoritesService {
	return &FavoritesService{kv: kv}
}

// List returns the user's favorite car IDs. A missing key is an empty list.
func (s *FavoritesService) List(ctx context.Context, userID string) ([]int64, error) {
	raw, err := s.kv.Get(ctx, userID, favoritesKey)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load favorites", slog.String("user_id", userID))
		return nil, err
	}
	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("favorites: decode stored value: %w", err)
	}
	return ids, nil
}

// IsFavorite reports whether the car is in the user's favorites.
func (s *FavoritesService) IsFavorite(ctx context.Context, userID string, carID int64) (bool, error) {
	ids, err := s.List(ctx, userID)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, carID), nil
}

// Toggle flips the car in or out of the favorites and reports whether it is
// a favorite afterwards.
func (s *FavoritesService) Toggle(ctx context.Context, userID string, carID int64) (bool, error) {
	ids, err := s.List(ctx, userID)
	if err != nil {
		return false, err
	}
	added := true
	if i := slices.Index(ids, carID); i >= 0 {
		ids = append(ids[:i], ids[i+1:]...)
		added = false
	} else {
		ids = append(ids, carID)
	}
	if err := s.save(ctx, userID, ids); err != nil {
		return false, err
	}
	s.LogDebug(ctx, "Favorites updated",
		slog.String("user_id", userID),
		slog.Int64("car_id", carID),
		slog.Bool("favorite", added))
	return added, nil
}

// SaveLastFilter remembers the filter spec the user applied last.
func (s *FavoritesService) SaveLastFilter(ctx context.Context, userID string, spec filtering.Spec) error {
	raw, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("favorites: encode filter spec: %w", err)
	}
	return s.kv.Set(ctx, userID, lastFilterKey, string(raw))
}

// LastFilter returns the remembered filter spec. The boolean reports whether
// one was stored.
func (s *FavoritesService) LastFilter(ctx context.Context, userID string) (filtering.Spec, bool, error) {
	raw, err := s.kv.Get(ctx, userID, lastFilterKey)
	if errors.Is(err, apperrors.ErrNotFound) {
		return filtering.Spec{}, false, nil
	}
	if err != nil {
		return filtering.Spec{}, false, err
	}
	var spec filtering.Spec
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		return filtering.Spec{}, false, fmt.Errorf("favorites: decode filter spec: %w", err)
	}
	return spec, true, nil
}

func (s *FavoritesService) save(ctx context.Context, userID string, ids []int64) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("favorites: encode value: %w", err)
	}
	return s.kv.Set(ctx, userID, favoritesKey, string(raw))
}
