package commands

import (
	"errors"

	"evdealer/internal/pkg/errs"
	"evdealer/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order and restore the
// reserved stock. Customers may cancel their own orders, staff may cancel any.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID uuid.UUID
	actorID uuid.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command. The reason is
// required and ends up appended to the order notes.
func NewCancelOrderCommand(orderID, actorID uuid.UUID, reason string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setReason(reason),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() uuid.UUID {
	return c.orderID
}

// ActorID returns the identifier of the user requesting cancellation.
func (c CancelOrderCommand) ActorID() uuid.UUID {
	return c.actorID
}

// Reason returns the cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelOrderCommand) setOrderID(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return errs.NewValueIsRequiredError("orderID")
	}
	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setActorID(actorID uuid.UUID) error {
	if actorID == uuid.Nil {
		return errs.NewValueIsRequiredError("actorID")
	}
	c.actorID = actorID
	return nil
}

func (c *CancelOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
