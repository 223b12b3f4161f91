package delivery

import (
	"fmt"

	"evdealer/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery:
//
//	Scheduled ──┬──> InTransit ──┬──> Delivered
//	            │                │
//	            └──> Cancelled <─┘
//
// Delivered and Cancelled are terminal.
type Status int

const (
	StatusUnknown Status = iota
	StatusScheduled
	StatusInTransit
	StatusDelivered
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusScheduled: "Scheduled",
		StatusInTransit: "InTransit",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusScheduled: {StatusInTransit, StatusDelivered, StatusCancelled},
		StatusInTransit: {StatusDelivered, StatusCancelled},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// StatusFromString parses a status name as used on the transport layer.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid delivery status", s))
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
	return s == StatusDelivered || s == StatusCancelled
}

// TransitionTo returns the new status if the transition is allowed, or a
// Conflict error when it is not.
func (s Status) TransitionTo(newStatus Status) (Status, error) {
	if err := newStatus.Validate(); err != nil {
		return StatusUnknown, err
	}

	for _, allowed := range getTransitions()[s] {
		if allowed == newStatus {
			return newStatus, nil
		}
	}
	return StatusUnknown, errs.NewConflictError(
		fmt.Sprintf("cannot change delivery status from %s to %s", s, newStatus))
}
