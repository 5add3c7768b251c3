package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by engine operations. Store-level errors
// (SessionNotFound, ConcurrentModification, StoreUnavailable) pass through
// from pkg/store untouched.
var (
	// ErrInvalidState rejects an operation the current status disallows.
	ErrInvalidState = errors.New("invalid session state for operation")

	// ErrParticipantNotFound rejects an explicit next participant id that
	// is not part of the session.
	ErrParticipantNotFound = errors.New("participant not found")
)

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
