// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import "errors"

var (
	// ErrInvalidAnswer is returned when a value falls outside the scale or
	// targets an item the catalog does not contain.
	ErrInvalidAnswer = errors.New("invalid answer")

	// ErrUnknownItem is returned for lookups by an id absent from the catalog.
	ErrUnknownItem = errors.New("unknown item")

	// ErrGuardViolation is returned when advancing past or submitting from
	// an unanswered item, or when a transition is not allowed in the
	// current phase.
	ErrGuardViolation = errors.New("guard violation")

	// ErrSessionCompleted is returned by answering and navigation calls on a
	// completed session. It also matches ErrGuardViolation.
	ErrSessionCompleted = errors.New("session completed")

	// ErrDegenerateMaximum means the maximum possible score is zero.
	ErrDegenerateMaximum = errors.New("maximum score is zero")

	ErrInvalidCatalog = errors.New("invalid catalog")
)

// completedError lets ErrSessionCompleted match ErrGuardViolation too.
type completedError struct{ op string }

func (e completedError) Error() string {
	return e.op + ": " + ErrSessionCompleted.Error()
}

func (e completedError) Is(target error) bool {
	return target == ErrSessionCompleted || target == ErrGuardViolation
}
