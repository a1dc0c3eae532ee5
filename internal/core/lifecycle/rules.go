// Package lifecycle is the status transition engine. All functions are pure:
// they never mutate their inputs and carry no state beyond the fixed
// transition tables below.
package lifecycle

import (
	"github.com/arale275/autix-sub001/internal/apperrors"
	"github.com/arale275/autix-sub001/internal/core/domain"
)

// Rules holds the legal transition set for one entity type. Illegal moves
// are rejected centrally here instead of with ad hoc conditionals at call
// sites.
type Rules[S ~string] struct {
	entity domain.EntityType
	legal  map[S][]S
}

// inquiryRules: new -> responded -> closed, direct close allowed,
// closed is terminal.
var inquiryRules = Rules[domain.InquiryStatus]{
	entity: domain.EntityInquiry,
	legal: map[domain.InquiryStatus][]domain.InquiryStatus{
		domain.InquiryNew:       {domain.InquiryResponded, domain.InquiryClosed},
		domain.InquiryResponded: {domain.InquiryClosed},
		domain.InquiryClosed:    {},
	},
}

// requestRules: close and reopen are both legal.
var requestRules = Rules[domain.RequestStatus]{
	entity: domain.EntityCarRequest,
	legal: map[domain.RequestStatus][]domain.RequestStatus{
		domain.RequestActive: {domain.RequestClosed},
		domain.RequestClosed: {domain.RequestActive},
	},
}

// carRules: availability toggles both ways, sold is terminal from either.
var carRules = Rules[domain.CarStatus]{
	entity: domain.EntityCarListing,
	legal: map[domain.CarStatus][]domain.CarStatus{
		domain.CarActive: {domain.CarHidden, domain.CarSold},
		domain.CarHidden: {domain.CarActive, domain.CarSold},
		domain.CarSold:   {},
	},
}

// Known reports whether s is part of the entity's status domain.
func (r Rules[S]) Known(s S) bool {
	_, ok := r.legal[s]
	return ok
}

// Can reports whether from -> to is in the legal set. Same-status is always
// allowed (no-op).
func (r Rules[S]) Can(from, to S) bool {
	if from == to {
		return r.Known(from)
	}
	for _, next := range r.legal[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Validate returns a typed failure when from -> to is illegal.
func (r Rules[S]) Validate(from, to S) error {
	if r.Can(from, to) {
		return nil
	}
	return &apperrors.InvalidTransitionError{
		Entity: string(r.entity),
		From:   string(from),
		To:     string(to),
	}
}

// InquiryRules exposes the inquiry transition table for legality checks.
func InquiryRules() Rules[domain.InquiryStatus] { return inquiryRules }

// RequestRules exposes the car request transition table.
func RequestRules() Rules[domain.RequestStatus] { return requestRules }

// CarRules exposes the car listing transition table.
func CarRules() Rules[domain.CarStatus] { return carRules }
