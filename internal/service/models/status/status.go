package status

import (
	"errors"
	"fmt"
)

// Status is the fulfillment state of a single order item.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready"
	StatusDelivered Status = "Delivered"
)

var ErrInvalidStatus = errors.New("invalid status")

func (s Status) String() string {
	return string(s)
}

// Parse converts a raw value into a Status.
func Parse(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered:
		return Status(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Aggregate derives the overall status of an order from its items.
// A single distinct status wins; any disagreement, or no items at all, is Pending.
func Aggregate(statuses ...Status) Status {
	if len(statuses) == 0 {
		return StatusPending
	}

	first := statuses[0]
	for _, s := range statuses[1:] {
		if s != first {
			return StatusPending
		}
	}

	return first
}
