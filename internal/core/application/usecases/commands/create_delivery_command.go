package commands

import (
	"errors"
	"time"

	"evdealer/internal/pkg/errs"
	"evdealer/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a staff request to schedule the handover
// of a paid order.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID      uuid.UUID
	orderID         uuid.UUID
	actorID         uuid.UUID
	plannedDate     *time.Time
	shippingAddress string
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a delivery scheduling command. The
// planned date, shipping address and notes are optional.
func NewCreateDeliveryCommand(
	deliveryID, orderID, actorID uuid.UUID,
	plannedDate *time.Time,
	shippingAddress, notes string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		plannedDate:     plannedDate,
		shippingAddress: shippingAddress,
		notes:           notes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier the delivery will be created under.
func (c CreateDeliveryCommand) DeliveryID() uuid.UUID {
	return c.deliveryID
}

// OrderID returns the identifier of the order being delivered.
func (c CreateDeliveryCommand) OrderID() uuid.UUID {
	return c.orderID
}

// ActorID returns the identifier of the scheduling staff member.
func (c CreateDeliveryCommand) ActorID() uuid.UUID {
	return c.actorID
}

// PlannedDate returns the optional planned handover date.
func (c CreateDeliveryCommand) PlannedDate() *time.Time {
	return c.plannedDate
}

// ShippingAddress returns the optional shipping address override.
func (c CreateDeliveryCommand) ShippingAddress() string {
	return c.shippingAddress
}

// Notes returns the optional delivery notes.
func (c CreateDeliveryCommand) Notes() string {
	return c.notes
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID uuid.UUID) error {
	if deliveryID == uuid.Nil {
		return errs.NewValueIsRequiredError("deliveryID")
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setOrderID(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return errs.NewValueIsRequiredError("orderID")
	}
	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryCommand) setActorID(actorID uuid.UUID) error {
	if actorID == uuid.Nil {
		return errs.NewValueIsRequiredError("actorID")
	}
	c.actorID = actorID
	return nil
}
