package commands

import (
	"errors"
	"time"

	"evdealer/internal/core/domain/model/delivery"
	"evdealer/internal/pkg/errs"
	"evdealer/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a staff request to move a delivery
// through its lifecycle. Completing a delivery forces the owning order to
// Delivered.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID  uuid.UUID
	actorID     uuid.UUID
	newStatus   delivery.Status
	plannedDate *time.Time
	actualDate  *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a delivery status change command.
// Both dates are optional; the actual date is only consulted when the target
// status is Delivered.
func NewUpdateDeliveryStatusCommand(
	deliveryID, actorID uuid.UUID,
	newStatus delivery.Status,
	plannedDate, actualDate *time.Time,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		plannedDate: plannedDate,
		actualDate:  actualDate,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setActorID(actorID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to update.
func (c UpdateDeliveryStatusCommand) DeliveryID() uuid.UUID {
	return c.deliveryID
}

// ActorID returns the identifier of the staff member requesting the change.
func (c UpdateDeliveryStatusCommand) ActorID() uuid.UUID {
	return c.actorID
}

// NewStatus returns the requested target status.
func (c UpdateDeliveryStatusCommand) NewStatus() delivery.Status {
	return c.newStatus
}

// PlannedDate returns the optional new planned date.
func (c UpdateDeliveryStatusCommand) PlannedDate() *time.Time {
	return c.plannedDate
}

// ActualDate returns the optional handover date.
func (c UpdateDeliveryStatusCommand) ActualDate() *time.Time {
	return c.actualDate
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID uuid.UUID) error {
	if deliveryID == uuid.Nil {
		return errs.NewValueIsRequiredError("deliveryID")
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setActorID(actorID uuid.UUID) error {
	if actorID == uuid.Nil {
		return errs.NewValueIsRequiredError("actorID")
	}
	c.actorID = actorID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setNewStatus(newStatus delivery.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
