package delivery

import (
	"errors"
	"time"

	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")
)

// Delivery schedules and tracks the handover of a purchased vehicle. Each
// order has at most one non-deleted delivery, and a delivery can only exist
// for an order with a paid payment; both preconditions are checked by the
// creating handler inside the delivery's unit of work.
//
// Delivery is the sole writer of its status and actual date. Completing a
// delivery forces the owning order to Delivered, coordinated by the
// application layer in the same unit of work.
type Delivery struct {
	id              uuid.UUID
	orderID         uuid.UUID
	status          Status
	plannedDate     *time.Time
	actualDate      *time.Time
	shippingAddress string
	notes           string
	isDeleted       bool
	createdAt       time.Time
	updatedAt       *time.Time
	updatedBy       *uuid.UUID

	isConstructed bool
}

// NewDelivery creates a scheduled delivery for an order.
func NewDelivery(
	id, orderID uuid.UUID,
	plannedDate *time.Time,
	shippingAddress, notes string,
	createdAt time.Time,
) (*Delivery, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if orderID == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	return &Delivery{
		id:              id,
		orderID:         orderID,
		status:          StatusScheduled,
		plannedDate:     plannedDate,
		shippingAddress: shippingAddress,
		notes:           notes,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(
	id, orderID uuid.UUID,
	status Status,
	plannedDate, actualDate *time.Time,
	shippingAddress, notes string,
	isDeleted bool,
	createdAt time.Time,
	updatedAt *time.Time,
	updatedBy *uuid.UUID,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, plannedDate, shippingAddress, notes, createdAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d.status = status
	d.actualDate = actualDate
	d.isDeleted = isDeleted
	d.updatedAt = updatedAt
	d.updatedBy = updatedBy
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() uuid.UUID           { return d.id }
func (d *Delivery) OrderID() uuid.UUID      { return d.orderID }
func (d *Delivery) Status() Status          { return d.status }
func (d *Delivery) PlannedDate() *time.Time { return d.plannedDate }
func (d *Delivery) ActualDate() *time.Time  { return d.actualDate }
func (d *Delivery) ShippingAddress() string { return d.shippingAddress }
func (d *Delivery) Notes() string           { return d.notes }
func (d *Delivery) IsDeleted() bool         { return d.isDeleted }
func (d *Delivery) CreatedAt() time.Time    { return d.createdAt }
func (d *Delivery) UpdatedAt() *time.Time   { return d.updatedAt }
func (d *Delivery) UpdatedBy() *uuid.UUID   { return d.updatedBy }

// Reschedule updates the planned date of a delivery that has not completed.
func (d *Delivery) Reschedule(actorID uuid.UUID, plannedDate time.Time, now time.Time) error {
	if d.status.IsTerminal() {
		return errs.NewConflictError("cannot reschedule a completed delivery")
	}

	d.plannedDate = &plannedDate
	d.stamp(actorID, now)
	return nil
}

// ChangeStatus applies a status transition.
//
// On Delivered the actual date is set to the supplied value, or to now when
// absent. The returned becameDelivered flag tells the caller to force the
// owning order to Delivered in the same unit of work.
func (d *Delivery) ChangeStatus(
	actorID uuid.UUID,
	newStatus Status,
	plannedDate, actualDate *time.Time,
	now time.Time,
) (becameDelivered bool, err error) {
	next, err := d.status.TransitionTo(newStatus)
	if err != nil {
		return false, err
	}

	if plannedDate != nil {
		d.plannedDate = plannedDate
	}
	if next == StatusDelivered {
		if actualDate != nil {
			d.actualDate = actualDate
		} else {
			d.actualDate = &now
		}
		becameDelivered = true
	}

	d.status = next
	d.stamp(actorID, now)
	return becameDelivered, nil
}

func (d *Delivery) stamp(actorID uuid.UUID, now time.Time) {
	d.updatedBy = &actorID
	d.updatedAt = &now
}
