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

// RequestService owns a buyer's car request snapshot. Close and reopen are
// both legal; the lifecycle engine enforces the table.
type RequestService struct {
	BaseService
	store   ports.RequestStore
	buyerID string

	mu        sync.RWMutex
	snapshot  []domain.CarRequest
	fetchedAt time.Time
}

// NewRequestService creates a request service for one buyer.
func NewRequestService(store ports.RequestStore, buyerID string) *RequestService {
	return &RequestService{store: store, buyerID: buyerID}
}

// Refresh fetches the current collection and replaces the working copy.
func (s *RequestService) Refresh(ctx context.Context) error {
	list, err := s.store.ListRequests(ctx, s.buyerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to refresh car requests", slog.String("buyer_id", s.buyerID))
		return err
	}
	s.mu.Lock()
	s.snapshot = list
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	s.LogDebug(ctx, "Car request snapshot replaced",
		slog.String("buyer_id", s.buyerID),
		slog.Int("count", len(list)))
	return nil
}

// Snapshot returns a copy of the raw, unfiltered collection.
func (s *RequestService) Snapshot() []domain.CarRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CarRequest, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// View derives a filtered, ordered view for rendering.
func (s *RequestService) View(spec filtering.Spec) []domain.CarRequest {
	return filtering.Requests(s.Snapshot(), spec, time.Now())
}

// Stats aggregates the raw snapshot.
func (s *RequestService) Stats() stats.RequestStats {
	return stats.Requests(s.Snapshot(), time.Now())
}

// Get returns the snapshot entry with the given ID.
func (s *RequestService) Get(id int64) (domain.CarRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.snapshot {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.CarRequest{}, apperrors.ErrNotFound
}

// Close marks a request as closed.
func (s *RequestService) Close(ctx context.Context, id int64) (*domain.CarRequest, error) {
	return s.transition(ctx, id, domain.RequestClosed)
}

// Reopen makes a closed request active again.
func (s *RequestService) Reopen(ctx context.Context, id int64) (*domain.CarRequest, error) {
	return s.transition(ctx, id, domain.RequestActive)
}

// Delete removes a request from the backend and the snapshot.
func (s *RequestService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.store.DeleteRequest(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete car request", slog.Int64("request_id", id))
		return err
	}
	s.remove(id)
	s.LogInfo(ctx, "Car request deleted", slog.Int64("request_id", id))
	return nil
}

// BulkTransition applies the target status to every selected request
// sequentially. The selection is cleared when the batch completes.
func (s *RequestService) BulkTransition(ctx context.Context, sel *Selection, target domain.RequestStatus) BatchResult {
	defer sel.Clear()
	res := runBatch(ctx, sel.IDs(), func(ctx context.Context, id int64) error {
		_, err := s.transition(ctx, id, target)
		return err
	})
	s.LogInfo(ctx, "Bulk request transition finished",
		slog.String("target", string(target)),
		slog.Int("succeeded", res.Succeeded),
		slog.Int("failed", res.Failed))
	return res
}

// BulkDelete deletes every selected request sequentially.
func (s *RequestService) BulkDelete(ctx context.Context, sel *Selection) BatchResult {
	defer sel.Clear()
	res := runBatch(ctx, sel.IDs(), s.Delete)
	s.LogInfo(ctx, "Bulk request delete finished",
		slog.Int("succeeded", res.Succeeded),
		slog.Int("failed", res.Failed))
	return res
}

func (s *RequestService) transition(ctx context.Context, id int64, target domain.RequestStatus) (*domain.CarRequest, error) {
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	next, err := lifecycle.TransitionRequest(current, target)
	if err != nil {
		s.LogDebug(ctx, "Car request transition rejected",
			slog.Int64("request_id", id),
			slog.String("from", string(current.Status)),
			slog.String("to", string(target)))
		return nil, err
	}
	if next.Status == current.Status {
		return &current, nil
	}

	persisted, err := s.store.UpdateRequestStatus(ctx, id, target)
	if err != nil {
		s.LogError(ctx, err, "Failed to persist request transition",
			slog.Int64("request_id", id),
			slog.String("target", string(target)))
		return nil, err
	}
	if persisted == nil {
		persisted = &next
	}
	s.replace(*persisted)
	s.LogInfo(ctx, "Car request transitioned",
		slog.Int64("request_id", id),
		slog.String("from", string(current.Status)),
		slog.String("to", string(persisted.Status)))
	return persisted, nil
}

func (s *RequestService) replace(r domain.CarRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snapshot {
		if s.snapshot[i].ID == r.ID {
			s.snapshot[i] = r
			return
		}
	}
}

func (s *RequestService) remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snapshot {
		if s.snapshot[i].ID == id {
			s.snapshot = append(s.snapshot[:i], s.snapshot[i+1:]...)
			return
		}
	}
}
