package drafts

import (
	"errors"
	"fmt"
)

// ErrDraftNotFound is returned for unknown or already discarded draft ids
var ErrDraftNotFound = errors.New("draft not found")

// ErrInvalidTransition is returned when an operation is not legal in the
// draft's current state. The draft is left unchanged.
var ErrInvalidTransition = errors.New("invalid draft transition")

// ValidationError reports a user-recoverable input failure on a single field.
// The caller re-prompts; nothing is clamped or silently corrected.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func transitionErr(op string, state State) error {
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidTransition, op, state)
}
