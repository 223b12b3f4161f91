package commands

import (
	"errors"

	"evdealer/internal/pkg/errs"
	"evdealer/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to purchase one vehicle.
// The order ID is allocated by the caller so it can be returned immediately.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         uuid.UUID
	customerID      uuid.UUID
	vehicleID       uuid.UUID
	shippingAddress string
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new purchase order.
// Shipping address and notes are optional.
func NewCreateOrderCommand(orderID, customerID, vehicleID uuid.UUID, shippingAddress, notes string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		shippingAddress: shippingAddress,
		notes:           notes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setVehicleID(vehicleID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() uuid.UUID {
	return c.orderID
}

// CustomerID returns the purchasing customer's identifier.
func (c CreateOrderCommand) CustomerID() uuid.UUID {
	return c.customerID
}

// VehicleID returns the identifier of the vehicle being purchased.
func (c CreateOrderCommand) VehicleID() uuid.UUID {
	return c.vehicleID
}

// ShippingAddress returns the optional shipping address.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// Notes returns the optional customer notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return errs.NewValueIsRequiredError("orderID")
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID uuid.UUID) error {
	if customerID == uuid.Nil {
		return errs.NewValueIsRequiredError("customerID")
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setVehicleID(vehicleID uuid.UUID) error {
	if vehicleID == uuid.Nil {
		return errs.NewValueIsRequiredError("vehicleID")
	}
	c.vehicleID = vehicleID
	return nil
}
