package domain

import "fmt"

// Status tracks an order through its stages. Wire values are the
// Portuguese labels the dashboard has always displayed.
type Status string

const (
	StatusRequested Status = "solicitado"
	StatusConfirmed Status = "confirmado"
	StatusDelivered Status = "entregue"
	StatusCancelled Status = "cancelado"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusRequested, StatusConfirmed, StatusDelivered, StatusCancelled:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Terminal statuses accept no further transitions.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether the move from s to next is allowed:
// solicitado → confirmado → entregue, cancelado from any non-terminal
// state, and repeating the current status is a no-op so status updates
// stay idempotent.
func (s Status) CanTransition(next Status) bool {
	if s == next {
		return true
	}
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	switch s {
	case StatusRequested:
		return next == StatusConfirmed
	case StatusConfirmed:
		return next == StatusDelivered
	}
	return false
}
