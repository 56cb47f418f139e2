package reservations

import (
	"fmt"
	"strings"
)

// Status of a committed reservation. Status transitions are the only allowed
// mutation of a reservation and are driven by the approval workflow.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// ParseStatus converts user input into a Status
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusCancelled:
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

// IsActive reports whether the reservation still occupies its interval.
// Cancelled reservations release their window.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo reports whether the approval workflow allows the change
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}
