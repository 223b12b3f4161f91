package order

import (
	"fmt"

	"evdealer/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Pending ──┬──> Confirmed ──┬──> Delivered
//	          │                │
//	          └──> Cancelled <─┘
//
// Delivered and Cancelled are terminal. Confirmed requires at least one paid
// payment (enforced by the aggregate, not the status value). Transitions into
// Delivered are driven only by the delivery lifecycle, never requested
// directly.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is first created.
	StatusPending

	// StatusConfirmed indicates payment has been received and the order is
	// being processed by staff.
	StatusConfirmed

	// StatusCancelled indicates the order was cancelled and its stock
	// restored. Terminal.
	StatusCancelled

	// StatusDelivered indicates the vehicle has been handed over. Terminal.
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusConfirmed: "Confirmed",
		StatusCancelled: "Cancelled",
		StatusDelivered: "Delivered",
	}
}

// StatusFromString parses a status name as used on the transport layer.
// Matching is exact; unknown names return a validation error.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusDelivered
}

// Confirm transitions the status to Confirmed.
//
// Valid only from Pending. The caller must additionally verify the payment
// gate before applying the transition.
func (s Status) Confirm() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewConflictError(
			fmt.Sprintf("cannot confirm an order in status %s", s))
	}
	return StatusConfirmed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from Pending and Confirmed. Cancelling an already cancelled or a
// delivered order is a conflict.
func (s Status) Cancel() (Status, error) {
	switch s {
	case StatusCancelled:
		return StatusUnknown, errs.NewConflictError("order is already cancelled")
	case StatusDelivered:
		return StatusUnknown, errs.NewConflictError("cannot cancel a delivered order")
	case StatusPending, StatusConfirmed:
		return StatusCancelled, nil
	default:
		return StatusUnknown, errs.NewConflictError(
			fmt.Sprintf("cannot cancel an order in status %s", s))
	}
}

// Deliver transitions the status to Delivered.
//
// Valid from Pending and Confirmed: the delivery lifecycle may complete an
// order that staff never explicitly confirmed, because delivery creation
// already proved a paid payment exists.
func (s Status) Deliver() (Status, error) {
	switch s {
	case StatusPending, StatusConfirmed:
		return StatusDelivered, nil
	default:
		return StatusUnknown, errs.NewConflictError(
			fmt.Sprintf("cannot deliver an order in status %s", s))
	}
}
