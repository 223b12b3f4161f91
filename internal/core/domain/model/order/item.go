package order

import (
	"errors"
	"fmt"

	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")
)

// Item is a single line of an order: one vehicle at the price it had when the
// order was placed. The unit price is a snapshot and never tracks later
// changes to the vehicle's base price.
type Item struct {
	id        uuid.UUID
	orderID   uuid.UUID
	vehicleID uuid.UUID
	unitPrice float64

	isConstructed bool
}

// NewItem creates an order line with validation.
func NewItem(id, orderID, vehicleID uuid.UUID, unitPrice float64) (Item, error) {
	if id == uuid.Nil {
		return Item{}, errs.NewValueIsRequiredError("id")
	}
	if orderID == uuid.Nil {
		return Item{}, errs.NewValueIsRequiredError("orderID")
	}
	if vehicleID == uuid.Nil {
		return Item{}, errs.NewValueIsRequiredError("vehicleID")
	}
	if unitPrice <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%f is not greater than 0", unitPrice))
	}

	return Item{
		id:            id,
		orderID:       orderID,
		vehicleID:     vehicleID,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs an order line from persistence.
func RestoreItem(id, orderID, vehicleID uuid.UUID, unitPrice float64) (Item, error) {
	return NewItem(id, orderID, vehicleID, unitPrice)
}

// Validate ensures the Item instance was properly constructed.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i Item) ID() uuid.UUID        { return i.id }
func (i Item) OrderID() uuid.UUID   { return i.orderID }
func (i Item) VehicleID() uuid.UUID { return i.vehicleID }
func (i Item) UnitPrice() float64   { return i.unitPrice }
