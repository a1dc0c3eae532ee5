package filtering

import (
	"time"

	"github.com/arale275/autix-sub001/internal/core/domain"
	"github.com/arale275/autix-sub001/internal/core/lifecycle"
)

// Inquiries returns a new slice holding the inquiries matching spec, ordered
// by the requested sort key. Search covers message, buyer name and buyer
// email. The priority facet grades by lifecycle urgency at now.
func Inquiries(list []domain.Inquiry, spec Spec, now time.Time) []domain.Inquiry {
	var preds []func(domain.Inquiry) bool

	if spec.Search != "" {
		preds = append(preds, func(in domain.Inquiry) bool {
			return matchesSearch(spec.Search, in.Message, in.BuyerName, in.BuyerEmail)
		})
	}
	if s := domain.InquiryStatus(spec.Status); spec.Status != "" && spec.Status != "all" && lifecycle.InquiryRules().Known(s) {
		preds = append(preds, func(in domain.Inquiry) bool { return in.Status == s })
	}
	if start, ok := windowStart(spec.DateRange, now); ok {
		preds = append(preds, func(in domain.Inquiry) bool { return inWindow(in.CreatedAt, start, now) })
	}
	if spec.Priority != "" && spec.Priority != "all" {
		want := lifecycle.Urgency(spec.Priority)
		preds = append(preds, func(in domain.Inquiry) bool {
			return lifecycle.InquiryUrgency(in, now) == want
		})
	}

	out := apply(list, preds...)
	sortStable(out, inquiryComparator(spec.SortBy), spec.descending(), func(in domain.Inquiry) int64 { return in.ID })
	return out
}

func inquiryComparator(sortBy string) func(a, b domain.Inquiry) int {
	switch sortBy {
	case "buyerName":
		col := newCollator()
		return func(a, b domain.Inquiry) int { return col.CompareString(a.BuyerName, b.BuyerName) }
	case "status":
		col := newCollator()
		return func(a, b domain.Inquiry) int { return col.CompareString(string(a.Status), string(b.Status)) }
	default: // createdAt
		return func(a, b domain.Inquiry) int { return compareTimes(a.CreatedAt, b.CreatedAt) }
	}
}
