package commands

import (
	"errors"

	"evdealer/internal/pkg/errs"
	"evdealer/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrAssignStaffCommandIsNotConstructed = errors.New(
	"AssignStaffCommand must be created via NewAssignStaffCommand constructor",
)

// AssignStaffCommand represents a request to assign a staff member to
// process an order.
type AssignStaffCommand struct { //nolint:recvcheck //using for validation
	orderID uuid.UUID
	actorID uuid.UUID
	staffID uuid.UUID

	guard guard.ConstructorGuard
}

// NewAssignStaffCommand creates a staff assignment command.
func NewAssignStaffCommand(orderID, actorID, staffID uuid.UUID) (AssignStaffCommand, error) {
	cmd := AssignStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setStaffID(staffID),
	); err != nil {
		return AssignStaffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignStaffCommand) Validate() error {
	return c.guard.Validate(ErrAssignStaffCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignStaffCommand) OrderID() uuid.UUID {
	return c.orderID
}

// ActorID returns the identifier of the staff member making the assignment.
func (c AssignStaffCommand) ActorID() uuid.UUID {
	return c.actorID
}

// StaffID returns the identifier of the staff member being assigned.
func (c AssignStaffCommand) StaffID() uuid.UUID {
	return c.staffID
}

func (c *AssignStaffCommand) setOrderID(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return errs.NewValueIsRequiredError("orderID")
	}
	c.orderID = orderID
	return nil
}

func (c *AssignStaffCommand) setActorID(actorID uuid.UUID) error {
	if actorID == uuid.Nil {
		return errs.NewValueIsRequiredError("actorID")
	}
	c.actorID = actorID
	return nil
}

func (c *AssignStaffCommand) setStaffID(staffID uuid.UUID) error {
	if staffID == uuid.Nil {
		return errs.NewValueIsRequiredError("staffID")
	}
	c.staffID = staffID
	return nil
}
