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

// InquiryService owns a dealer's inquiry snapshot. Refresh replaces the
// snapshot wholesale; views and stats are derived from it on demand. All
// status changes are validated by the lifecycle engine before the persist
// call goes out.
type InquiryService struct {
	BaseService
	store    ports.InquiryStore
	dealerID string

	mu        sync.RWMutex
	snapshot  []domain.Inquiry
	fetchedAt time.Time
}

// NewInquiryService creates an inquiry service for one dealer.
func NewInquiryService(store ports.InquiryStore, dealerID string) *InquiryService {
	return &InquiryService{store: store, dealerID: dealerID}
}

// Refresh fetches the current collection and replaces the working copy.
// A superseding refresh simply overwrites whatever is there (last write
// wins); no incremental merge is attempted.
func (s *InquiryService) Refresh(ctx context.Context) error {
	list, err := s.store.ListInquiries(ctx, s.dealerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to refresh inquiries", slog.String("dealer_id", s.dealerID))
		return err
	}
	s.mu.Lock()
	s.snapshot = list
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	s.LogDebug(ctx, "Inquiry snapshot replaced",
		slog.String("dealer_id", s.dealerID),
		slog.Int("count", len(list)))
	return nil
}

// Snapshot returns a copy of the raw, unfiltered collection.
func (s *InquiryService) Snapshot() []domain.Inquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Inquiry, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// FetchedAt returns when the snapshot was last replaced.
func (s *InquiryService) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

// View derives a filtered, ordered view for rendering.
func (s *InquiryService) View(spec filtering.Spec) []domain.Inquiry {
	return filtering.Inquiries(s.Snapshot(), spec, time.Now())
}

// Stats aggregates the raw snapshot, never a filtered view.
func (s *InquiryService) Stats() stats.InquiryStats {
	return stats.Inquiries(s.Snapshot(), time.Now())
}

// Get returns the snapshot entry with the given ID, or ErrNotFound when the
// snapshot is stale.
func (s *InquiryService) Get(id int64) (domain.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, in := range s.snapshot {
		if in.ID == id {
			return in, nil
		}
	}
	return domain.Inquiry{}, apperrors.ErrNotFound
}

// Respond marks an inquiry as responded.
func (s *InquiryService) Respond(ctx context.Context, id int64) (*domain.Inquiry, error) {
	return s.transition(ctx, id, domain.InquiryResponded)
}

// Close closes an inquiry. Legal from both new and responded.
func (s *InquiryService) Close(ctx context.Context, id int64) (*domain.Inquiry, error) {
	return s.transition(ctx, id, domain.InquiryClosed)
}

// Delete removes an inquiry from the backend and the snapshot.
func (s *InquiryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.store.DeleteInquiry(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete inquiry", slog.Int64("inquiry_id", id))
		return err
	}
	s.remove(id)
	s.LogInfo(ctx, "Inquiry deleted", slog.Int64("inquiry_id", id))
	return nil
}

// BulkTransition applies the target status to every selected inquiry
// sequentially, collecting per-item results. The selection is cleared when
// the batch completes, regardless of partial failure.
func (s *InquiryService) BulkTransition(ctx context.Context, sel *Selection, target domain.InquiryStatus) BatchResult {
	defer sel.Clear()
	res := runBatch(ctx, sel.IDs(), func(ctx context.Context, id int64) error {
		_, err := s.transition(ctx, id, target)
		return err
	})
	s.LogInfo(ctx, "Bulk inquiry transition finished",
		slog.String("target", string(target)),
		slog.Int("succeeded", res.Succeeded),
		slog.Int("failed", res.Failed))
	return res
}

// BulkDelete deletes every selected inquiry sequentially.
func (s *InquiryService) BulkDelete(ctx context.Context, sel *Selection) BatchResult {
	defer sel.Clear()
	res := runBatch(ctx, sel.IDs(), s.Delete)
	s.LogInfo(ctx, "Bulk inquiry delete finished",
		slog.Int("succeeded", res.Succeeded),
		slog.Int("failed", res.Failed))
	return res
}

func (s *InquiryService) transition(ctx context.Context, id int64, target domain.InquiryStatus) (*domain.Inquiry, error) {
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	// Legality check happens before the backend call is issued.
	next, err := lifecycle.TransitionInquiry(current, target, time.Now())
	if err != nil {
		s.LogDebug(ctx, "Inquiry transition rejected",
			slog.Int64("inquiry_id", id),
			slog.String("from", string(current.Status)),
			slog.String("to", string(target)))
		return nil, err
	}
	if next.Status == current.Status {
		// Same-status no-op; nothing to persist.
		return &current, nil
	}

	persisted, err := s.store.UpdateInquiryStatus(ctx, id, target)
	if err != nil {
		s.LogError(ctx, err, "Failed to persist inquiry transition",
			slog.Int64("inquiry_id", id),
			slog.String("target", string(target)))
		return nil, err
	}
	if persisted == nil {
		persisted = &next
	}
	s.replace(*persisted)
	s.LogInfo(ctx, "Inquiry transitioned",
		slog.Int64("inquiry_id", id),
		slog.String("from", string(current.Status)),
		slog.String("to", string(persisted.Status)))
	return persisted, nil
}

func (s *InquiryService) replace(in domain.Inquiry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snapshot {
		if s.snapshot[i].ID == in.ID {
			s.snapshot[i] = in
			return
		}
	}
}

func (s *InquiryService) remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snapshot {
		if s.snapshot[i].ID == id {
			s.snapshot = append(s.snapshot[:i], s.snapshot[i+1:]...)
			return
		}
	}
}
