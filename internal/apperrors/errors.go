package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested record is absent from the current snapshot.
// Callers should treat this as stale data and trigger a refresh.
var ErrNotFound = errors.New("record not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidTransition indicates a status change outside the legal set for the entity type.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrTransport indicates a failure talking to the marketplace backend.
// It is propagated unchanged; retry policy belongs to the transport layer.
var ErrTransport = errors.New("transport failure")

// InvalidTransitionError carries the rejected transition details.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot transition from %q to %q", e.Entity, e.From, e.To)
}

// Unwrap lets errors.Is(err, ErrInvalidTransition) match.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
