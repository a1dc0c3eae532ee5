package filtering

import (
	"time"

	"github.com/arale275/autix-sub001/internal/core/domain"
	"github.com/arale275/autix-sub001/internal/core/lifecycle"
)

// Cars returns a new slice holding the listings matching spec. Search covers
// make, model, city and description; the category facet matches make.
func Cars(list []domain.Car, spec Spec, now time.Time) []domain.Car {
	var preds []func(domain.Car) bool

	if spec.Search != "" {
		preds = append(preds, func(c domain.Car) bool {
			return matchesSearch(spec.Search, c.Make, c.Model, c.City, c.Description)
		})
	}
	if s := domain.CarStatus(spec.Status); spec.Status != "" && spec.Status != "all" && lifecycle.CarRules().Known(s) {
		preds = append(preds, func(c domain.Car) bool { return c.Status == s })
	}
	if start, ok := windowStart(spec.DateRange, now); ok {
		preds = append(preds, func(c domain.Car) bool { return inWindow(c.CreatedAt, start, now) })
	}
	if spec.Category != "" && spec.Category != "all" {
		preds = append(preds, func(c domain.Car) bool { return equalFold(c.Make, spec.Category) })
	}

	out := apply(list, preds...)
	sortStable(out, carComparator(spec.SortBy), spec.descending(), func(c domain.Car) int64 { return c.ID })
	return out
}

func carComparator(sortBy string) func(a, b domain.Car) int {
	switch sortBy {
	case "price":
		return func(a, b domain.Car) int { return a.Price.Cmp(b.Price) }
	case "year":
		return func(a, b domain.Car) int { return compareInts(a.Year, b.Year) }
	case "mileage":
		return func(a, b domain.Car) int { return compareInts(a.Mileage, b.Mileage) }
	case "make":
		col := newCollator()
		return func(a, b domain.Car) int { return col.CompareString(a.Make, b.Make) }
	case "model":
		col := newCollator()
		return func(a, b domain.Car) int { return col.CompareString(a.Model, b.Model) }
	case "status":
		col := newCollator()
		return func(a, b domain.Car) int { return col.CompareString(string(a.Status), string(b.Status)) }
	default: // createdAt
		return func(a, b domain.Car) int { return compareTimes(a.CreatedAt, b.CreatedAt) }
	}
}
