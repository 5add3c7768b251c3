package store

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound is returned when a session id is absent from the
	// store and cannot be recovered from the audit database.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExists is returned by Create when the key is already
	// present.
	ErrSessionExists = errors.New("session already exists")

	// ErrConcurrentModification is returned when a CAS write observes a
	// version other than the expected one. Callers retry with bounded
	// exponential backoff.
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrStateDeserialization is returned when a stored blob cannot be
	// parsed. Not retryable.
	ErrStateDeserialization = errors.New("stored state is not deserializable")

	// ErrStoreUnavailable wraps transport failures to the store.
	ErrStoreUnavailable = errors.New("state store unavailable")
)

// unavailable wraps a transport-level failure so callers can map it to 503
// with errors.Is(err, ErrStoreUnavailable).
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
