package reservations

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for unknown reservation ids, and for a second
	// Cancel once the record no longer maps to an active hold.
	ErrNotFound = errors.New("reservation not found")

	// ErrSlotUnavailable is returned when another session won the race for the
	// venue/interval. The draft is left unchanged so the user can pick another
	// slot.
	ErrSlotUnavailable = errors.New("requested slot is no longer available")

	// ErrInvalidStatus is returned for a status transition the approval
	// workflow does not allow.
	ErrInvalidStatus = errors.New("invalid status transition")
)

// PersistenceError wraps a failed store write. By the time the caller sees it
// the provisional interval hold has already been released, so a retry starts
// from a clean slate.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("reservation store %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
