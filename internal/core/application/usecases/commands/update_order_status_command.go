package commands

import (
	"errors"

	"evdealer/internal/core/domain/model/order"
	"evdealer/internal/pkg/errs"
	"evdealer/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a staff request to move an order to a
// new status. Cancellation and delivery have their own flows; the only
// status reachable this way is Confirmed.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   uuid.UUID
	actorID   uuid.UUID
	newStatus order.Status
	notes     string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status change command. Notes are
// optional and get appended to the order notes.
func NewUpdateOrderStatusCommand(orderID, actorID uuid.UUID, newStatus order.Status, notes string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() uuid.UUID {
	return c.orderID
}

// ActorID returns the identifier of the staff member requesting the change.
func (c UpdateOrderStatusCommand) ActorID() uuid.UUID {
	return c.actorID
}

// NewStatus returns the requested target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Notes returns the optional notes to append.
func (c UpdateOrderStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return errs.NewValueIsRequiredError("orderID")
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setActorID(actorID uuid.UUID) error {
	if actorID == uuid.Nil {
		return errs.NewValueIsRequiredError("actorID")
	}
	c.actorID = actorID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
