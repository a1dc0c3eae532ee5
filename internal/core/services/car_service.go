package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/arale275/autix-sub001/internal/apperrors"
	"github.com/arale275/autix-sub001/internal/core/domain"
	"github.com/arale275/autix-sub001/internal/core/filtering"
	"github.com/arale275/autix-sub001/internal/core/lifecycle"
	"github.com/arale275/autix-sub001/internal/core/ports"
	"github.com/arale275/autix-sub001/internal/core/stats"
)

// CarService owns a dealer's inventory snapshot. The hide/publish toggle is
// independent of the sold terminal state.
type CarService struct {
	BaseService
	store    ports.CarStore
	dealerID string

	mu        sync.RWMutex
	snapshot  []domain.Car
	fetchedAt time.Time
}

// NewCarService creates an inventory service for one dealer.
func NewCarService(store ports.CarStore, dealerID string) *CarService {
	return &CarService{store: store, dealerID: dealerID}
}

// Refresh fetches the current collection and replaces the working copy.
func (s *CarService) Refresh(ctx context.Context) error {
	list, err := s.store.ListCars(ctx, s.dealerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to refresh inventory", slog.String("dealer_id", s.dealerID))
		return err
	}
	s.mu.Lock()
	s.snapshot = list
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	s.LogDebug(ctx, "Inventory snapshot replaced",
		slog.String("dealer_id", s.dealerID),
		slog.Int("count", len(list)))
	return nil
}

// Snapshot returns a copy of the raw, unfiltered collection.
func (s *CarService) Snapshot() []domain.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Car, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// View derives a filtered, ordered view for rendering.
func (s *CarService) View(spec filtering.Spec) []domain.Car {
	return filtering.Cars(s.Snapshot(), spec, time.Now())
}

// Stats aggregates the raw snapshot.
func (s *CarService) Stats() stats.CarStats {
	return stats.Cars(s.Snapshot(), time.Now())
}

// Get returns the snapshot entry with the given ID.
func (s *CarService) Get(id int64) (domain.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.snapshot {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Car{}, apperrors.ErrNotFound
}

// Hide takes a listing out of search without selling it.
func (s *CarService) Hide(ctx context.Context, id int64) (*domain.Car, error) {
	return s.transition(ctx, id, domain.CarHidden)
}

// Publish makes a hidden listing visible again.
func (s *CarService) Publish(ctx context.Context, id int64) (*domain.Car, error) {
	return s.transition(ctx, id, domain.CarActive)
}

// MarkSold moves a listing to the sold terminal state.
func (s *CarService) MarkSold(ctx context.Context, id int64) (*domain.Car, error) {
	return s.transition(ctx, id, domain.CarSold)
}

// Delete removes a listing from the backend and the snapshot.
func (s *CarService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.store.DeleteCar(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete listing", slog.Int64("car_id", id))
		return err
	}
	s.remove(id)
	s.LogInfo(ctx, "Listing deleted", slog.Int64("car_id", id))
	return nil
}

// BulkTransition applies the target status to every selected listing
// sequentially. The selection is cleared when the batch completes.
func (s *CarService) BulkTransition(ctx context.Context, sel *Selection, target domain.CarStatus) BatchResult {
	defer sel.Clear()
	res := runBatch(ctx, sel.IDs(), func(ctx context.Context, id int64) error {
		_, err := s.transition(ctx, id, target)
		return err
	})
	s.LogInfo(ctx, "Bulk listing transition finished",
		slog.String("target", string(target)),
		slog.Int("succeeded", res.Succeeded),
		slog.Int("failed", res.Failed))
	return res
}

// BulkDelete deletes every selected listing sequentially.
func (s *CarService) BulkDelete(ctx context.Context, sel *Selection) BatchResult {
	defer sel.Clear()
	res := runBatch(ctx, sel.IDs(), s.Delete)
	s.LogInfo(ctx, "Bulk listing delete finished",
		slog.Int("succeeded", res.Succeeded),
		slog.Int("failed", res.Failed))
	return res
}

func (s *CarService) transition(ctx context.Context, id int64, target domain.CarStatus) (*domain.Car, error) {
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	next, err := lifecycle.TransitionCar(current, target)
	if err != nil {
		s.LogDebug(ctx, "Listing transition rejected",
			slog.Int64("car_id", id),
			slog.String("from", string(current.Status)),
			slog.String("to", string(target)))
		return nil, err
	}
	if next.Status == current.Status {
		return &current, nil
	}

	persisted, err := s.store.UpdateCarStatus(ctx, id, target)
	if err != nil {
		s.LogError(ctx, err, "Failed to persist listing transition",
			slog.Int64("car_id", id),
			slog.String("target", string(target)))
		return nil, err
	}
	if persisted == nil {
		persisted = &next
	}
	s.replace(*persisted)
	s.LogInfo(ctx, "Listing transitioned",
		slog.Int64("car_id", id),
		slog.String("from", string(current.Status)),
		slog.String("to", string(persisted.Status)))
	return persisted, nil
}

func (s *CarService) replace(c domain.Car) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snapshot {
		if s.snapshot[i].ID == c.ID {
			s.snapshot[i] = c
			return
		}
	}
}

func (s *CarService) remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snapshot {
		if s.snapshot[i].ID == id {
			s.snapshot = append(s.snapshot[:i], s.snapshot[i+1:]...)
			return
		}
	}
}
