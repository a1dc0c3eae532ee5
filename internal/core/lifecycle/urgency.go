package lifecycle

import (
	"time"

	"github.com/arale275/autix-sub001/internal/core/domain"
)

// Urgency classifies an unanswered inquiry by how long it has waited.
// It is derived on read and never stored.
type Urgency string

const (
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

const (
	highAfter   = 12 * time.Hour
	urgentAfter = 24 * time.Hour
)

// Age returns how long ago the record was created.
func Age(createdAt, now time.Time) time.Duration {
	return now.Sub(createdAt)
}

// InquiryUrgency grades an inquiry. Only meaningful while status is new;
// responded and closed inquiries are always normal.
func InquiryUrgency(in domain.Inquiry, now time.Time) Urgency {
	if in.Status != domain.InquiryNew {
		return UrgencyNormal
	}
	age := Age(in.CreatedAt, now)
	switch {
	case age > urgentAfter:
		return UrgencyUrgent
	case age > highAfter:
		return UrgencyHigh
	default:
		return UrgencyNormal
	}
}
