package filtering

import (
	"time"

	"github.com/arale275/autix-sub001/internal/core/domain"
	"github.com/arale275/autix-sub001/internal/core/lifecycle"
)

// Requests returns a new slice holding the car requests matching spec.
// Search covers make, model and requirements text; the category facet
// matches make exactly (case-insensitive).
func Requests(list []domain.CarRequest, spec Spec, now time.Time) []domain.CarRequest {
	var preds []func(domain.CarRequest) bool

	if spec.Search != "" {
		preds = append(preds, func(r domain.CarRequest) bool {
			return matchesSearch(spec.Search, r.Make, r.Model, r.Requirements)
		})
	}
	if s := domain.RequestStatus(spec.Status); spec.Status != "" && spec.Status != "all" && lifecycle.RequestRules().Known(s) {
		preds = append(preds, func(r domain.CarRequest) bool { return r.Status == s })
	}
	if start, ok := windowStart(spec.DateRange, now); ok {
		preds = append(preds, func(r domain.CarRequest) bool { return inWindow(r.CreatedAt, start, now) })
	}
	if spec.Category != "" && spec.Category != "all" {
		preds = append(preds, func(r domain.CarRequest) bool { return equalFold(r.Make, spec.Category) })
	}

	out := apply(list, preds...)
	sortStable(out, requestComparator(spec.SortBy), spec.descending(), func(r domain.CarRequest) int64 { return r.ID })
	return out
}

func requestComparator(sortBy string) func(a, b domain.CarRequest) int {
	switch sortBy {
	case "make":
		col := newCollator()
		return func(a, b domain.CarRequest) int { return col.CompareString(a.Make, b.Make) }
	case "maxPrice":
		return func(a, b domain.CarRequest) int { return a.MaxPrice.Cmp(b.MaxPrice) }
	case "status":
		col := newCollator()
		return func(a, b domain.CarRequest) int { return col.CompareString(string(a.Status), string(b.Status)) }
	default: // createdAt
		return func(a, b domain.CarRequest) int { return compareTimes(a.CreatedAt, b.CreatedAt) }
	}
}
