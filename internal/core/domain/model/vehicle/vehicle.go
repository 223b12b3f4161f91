package vehicle

import (
	"errors"
	"fmt"
	"time"

	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
	// created through NewVehicle or RestoreVehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle")
)

// Vehicle is the stock-holding aggregate of the sales domain. It tracks the
// number of units available for new orders.
//
// Vehicle maintains these invariants:
//   - stock is never negative
//   - stock is decremented only when an order is created against the vehicle
//     (ReserveUnit) and incremented only when a stock-holding order is
//     cancelled (RestoreUnit)
//   - an inactive or soft-deleted vehicle cannot be reserved
//
// Every stock mutation must be committed in the same unit of work as the
// order mutation it is paired with.
type Vehicle struct {
	id        uuid.UUID
	modelName string
	trimName  string
	modelYear int
	basePrice float64
	stock     int
	isActive  bool
	isDeleted bool
	createdAt time.Time
	updatedAt *time.Time

	isConstructed bool
}

// NewVehicle creates a vehicle with validation. New vehicles start active.
func NewVehicle(
	id uuid.UUID,
	modelName, trimName string,
	modelYear int,
	basePrice float64,
	stock int,
	createdAt time.Time,
) (*Vehicle, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if modelName == "" {
		return nil, errs.NewValueIsRequiredError("modelName")
	}
	if basePrice <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("basePrice",
			fmt.Errorf("%f is not greater than 0", basePrice))
	}
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}

	return &Vehicle{
		id:            id,
		modelName:     modelName,
		trimName:      trimName,
		modelYear:     modelYear,
		basePrice:     basePrice,
		stock:         stock,
		isActive:      true,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreVehicle reconstructs a vehicle from persistence.
func RestoreVehicle(
	id uuid.UUID,
	modelName, trimName string,
	modelYear int,
	basePrice float64,
	stock int,
	isActive, isDeleted bool,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Vehicle, error) {
	v, err := NewVehicle(id, modelName, trimName, modelYear, basePrice, stock, createdAt)
	if err != nil {
		return nil, err
	}
	v.isActive = isActive
	v.isDeleted = isDeleted
	v.updatedAt = updatedAt
	return v, nil
}

// Validate ensures the Vehicle instance was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

func (v *Vehicle) ID() uuid.UUID         { return v.id }
func (v *Vehicle) ModelName() string     { return v.modelName }
func (v *Vehicle) TrimName() string      { return v.trimName }
func (v *Vehicle) ModelYear() int        { return v.modelYear }
func (v *Vehicle) BasePrice() float64    { return v.basePrice }
func (v *Vehicle) Stock() int            { return v.stock }
func (v *Vehicle) IsActive() bool        { return v.isActive }
func (v *Vehicle) IsDeleted() bool       { return v.isDeleted }
func (v *Vehicle) CreatedAt() time.Time  { return v.createdAt }
func (v *Vehicle) UpdatedAt() *time.Time { return v.updatedAt }

// ReserveUnit takes one unit out of stock for a new order.
//
// Returns a Conflict error if the vehicle is not available for purchase or
// has no stock left. On success stock is decremented by exactly one.
func (v *Vehicle) ReserveUnit(now time.Time) error {
	if !v.isActive || v.isDeleted {
		return errs.NewConflictError("vehicle is not available for purchase")
	}
	if v.stock <= 0 {
		return errs.NewConflictError("vehicle is out of stock")
	}

	v.stock--
	v.touch(now)
	return nil
}

// RestoreUnit returns one unit to stock after an order cancellation.
func (v *Vehicle) RestoreUnit(now time.Time) error {
	if v.isDeleted {
		return errs.NewConflictError("vehicle is deleted")
	}

	v.stock++
	v.touch(now)
	return nil
}

// Deactivate removes the vehicle from sale without touching stock.
func (v *Vehicle) Deactivate(now time.Time) {
	v.isActive = false
	v.touch(now)
}

func (v *Vehicle) touch(now time.Time) {
	v.updatedAt = &now
}
