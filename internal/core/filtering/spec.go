// Package filtering builds AND-composed facet predicates and stable
// comparators over marketplace collections. Everything here is pure: the
// input slice is never reordered or mutated.
package filtering

import (
	"fmt"

	"github.com/arale275/autix-sub001/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// Date range facets. RangeAll contributes no constraint.
const (
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeAll   = "all"
)

// Sort directions.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Spec is the recognized filter configuration. The zero value accepts every
// record and sorts by createdAt descending (newest first). Unrecognized
// values in Status, Category and SortBy are ignored rather than rejected;
// the enumerable fields are checked by Validate.
type Spec struct {
	Search    string `json:"search,omitempty" validate:"omitempty,max=200"`
	Status    string `json:"status,omitempty"`
	DateRange string `json:"dateRange,omitempty" validate:"omitempty,oneof=today week month all"`
	Category  string `json:"category,omitempty"`
	Priority  string `json:"priority,omitempty" validate:"omitempty,oneof=normal high urgent all"`
	SortBy    string `json:"sortBy,omitempty"`
	SortOrder string `json:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the enumerable facet values.
func (s Spec) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("filter spec: %w: %w", apperrors.ErrValidation, err)
	}
	return nil
}

func (s Spec) descending() bool {
	// Default sort order is newest first when no explicit order is given.
	if s.SortOrder == "" {
		return s.SortBy == "" || s.SortBy == "createdAt"
	}
	return s.SortOrder == OrderDesc
}
