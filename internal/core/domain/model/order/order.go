package order

import (
	"errors"
	"fmt"
	"time"

	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root of a vehicle purchase. It owns its line items
// and its invoice (with the invoice's payments) exclusively, and references
// the customer, the assigned staff member and the items' vehicles by ID.
//
// Order maintains these invariants:
//   - total amount equals the sum of item unit prices, fixed at creation
//   - status transitions follow the lifecycle state machine in Status
//   - Confirmed requires at least one paid payment on the invoice
//   - Cancelled requires that no payment is paid; cancelling voids a pending
//     invoice
//   - Delivered is reached only through the delivery lifecycle
//
// Stock compensation for cancellations is coordinated by the application
// layer: the aggregate exposes its items so the handler can restore one unit
// per item inside the same unit of work.
type Order struct {
	id              uuid.UUID
	number          string
	customerID      uuid.UUID
	staffID         *uuid.UUID
	status          Status
	totalAmount     float64
	shippingAddress string
	notes           string
	items           []Item
	invoice         *Invoice
	isDeleted       bool
	createdAt       time.Time
	updatedAt       *time.Time
	updatedBy       *uuid.UUID

	isConstructed bool
}

// NewOrder creates a pending order with no items yet. Items and the invoice
// are attached by the creating handler before the aggregate is persisted.
func NewOrder(
	id uuid.UUID,
	number string,
	customerID uuid.UUID,
	shippingAddress, notes string,
	createdAt time.Time,
) (*Order, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}
	if customerID == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("customerID")
	}

	return &Order{
		id:              id,
		number:          number,
		customerID:      customerID,
		status:          StatusPending,
		shippingAddress: shippingAddress,
		notes:           notes,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence with its owned items
// and invoice.
func RestoreOrder(
	id uuid.UUID,
	number string,
	customerID uuid.UUID,
	staffID *uuid.UUID,
	status Status,
	totalAmount float64,
	shippingAddress, notes string,
	items []Item,
	invoice *Invoice,
	isDeleted bool,
	createdAt time.Time,
	updatedAt *time.Time,
	updatedBy *uuid.UUID,
) (*Order, error) {
	o, err := NewOrder(id, number, customerID, shippingAddress, notes, createdAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o.staffID = staffID
	o.status = status
	o.totalAmount = totalAmount
	o.items = items
	o.invoice = invoice
	o.isDeleted = isDeleted
	o.updatedAt = updatedAt
	o.updatedBy = updatedBy
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) Number() string          { return o.number }
func (o *Order) CustomerID() uuid.UUID   { return o.customerID }
func (o *Order) StaffID() *uuid.UUID     { return o.staffID }
func (o *Order) Status() Status          { return o.status }
func (o *Order) TotalAmount() float64    { return o.totalAmount }
func (o *Order) ShippingAddress() string { return o.shippingAddress }
func (o *Order) Notes() string           { return o.notes }
func (o *Order) IsDeleted() bool         { return o.isDeleted }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) UpdatedAt() *time.Time   { return o.updatedAt }
func (o *Order) UpdatedBy() *uuid.UUID   { return o.updatedBy }

// Items returns the order's line items.
func (o *Order) Items() []Item {
	return o.items
}

// Invoice returns the order's invoice, or nil if none was attached.
func (o *Order) Invoice() *Invoice {
	return o.invoice
}

// IsOwnedBy reports whether the given user is the order's customer.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.customerID == userID
}

// HasPaidPayment reports whether any payment on the order's invoice
// succeeded. This is the gate for confirmation and delivery creation, and the
// blocker for cancellation.
func (o *Order) HasPaidPayment() bool {
	return o.invoice != nil && o.invoice.HasPaidPayment()
}

// AddItem appends a line item and adds its unit price to the order total.
// Items can only be added before the order leaves Pending.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.orderID != o.id {
		return errs.NewValueIsInvalidErrorWithCause("item",
			fmt.Errorf("item belongs to order %s, not %s", item.orderID, o.id))
	}
	if o.status != StatusPending {
		return errs.NewConflictError(
			fmt.Sprintf("cannot add items to an order in status %s", o.status))
	}

	o.items = append(o.items, item)
	o.totalAmount += item.unitPrice
	return nil
}

// AttachInvoice sets the order's invoice. An order bills through exactly one
// invoice; attaching a second is a conflict.
func (o *Order) AttachInvoice(invoice *Invoice) error {
	if err := invoice.Validate(); err != nil {
		return err
	}
	if invoice.orderID != o.id {
		return errs.NewValueIsInvalidErrorWithCause("invoice",
			fmt.Errorf("invoice belongs to order %s, not %s", invoice.orderID, o.id))
	}
	if o.invoice != nil {
		return errs.NewConflictError("order already has an invoice")
	}

	o.invoice = invoice
	return nil
}

// Cancel transitions the order to Cancelled.
//
// Fails with a Conflict when the order is already terminal or when any
// payment is paid. On success the reason is appended to the notes, a pending
// invoice is voided, and the caller must restore one unit of stock per item
// in the same unit of work.
func (o *Order) Cancel(actorID uuid.UUID, reason string, now time.Time) error {
	if o.HasPaidPayment() {
		return errs.NewConflictError("cannot cancel an order with a paid payment")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	if o.invoice != nil {
		if err := o.invoice.MarkCancelled(now); err != nil {
			return err
		}
	}

	o.status = newStatus
	o.appendNote("Cancelled: " + reason)
	o.stamp(actorID, now)
	return nil
}

// ChangeStatus applies a staff-requested status transition.
//
// Confirmed requires a paid payment. Cancelled must go through Cancel so
// stock is restored, and Delivered is reached only through the delivery
// lifecycle; direct requests for either are conflicts.
func (o *Order) ChangeStatus(actorID uuid.UUID, newStatus Status, notes string, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	switch newStatus {
	case StatusConfirmed:
		if !o.HasPaidPayment() {
			return errs.NewConflictError("cannot confirm an order without a paid payment")
		}
		confirmed, err := o.status.Confirm()
		if err != nil {
			return err
		}
		o.status = confirmed
	case StatusCancelled:
		return errs.NewConflictError("orders are cancelled through the cancellation flow")
	case StatusDelivered:
		return errs.NewConflictError("orders are delivered through the delivery flow")
	default:
		return errs.NewConflictError(
			fmt.Sprintf("cannot change order status to %s", newStatus))
	}

	if notes != "" {
		o.appendNote(notes)
	}
	o.stamp(actorID, now)
	return nil
}

// MarkDelivered forces the order to Delivered when its delivery completes.
// An already delivered order is left untouched.
func (o *Order) MarkDelivered(actorID uuid.UUID, now time.Time) error {
	if o.status == StatusDelivered {
		return nil
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stamp(actorID, now)
	return nil
}

// AssignStaff assigns a staff member to process the order.
func (o *Order) AssignStaff(actorID, staffID uuid.UUID, now time.Time) error {
	if staffID == uuid.Nil {
		return errs.NewValueIsRequiredError("staffID")
	}
	if o.status.IsTerminal() {
		return errs.NewConflictError(
			fmt.Sprintf("cannot assign staff to an order in status %s", o.status))
	}

	o.staffID = &staffID
	o.stamp(actorID, now)
	return nil
}

// RecordPayment appends a gateway-reported payment to the order's invoice.
func (o *Order) RecordPayment(payment Payment, now time.Time) error {
	if o.invoice == nil {
		return errs.NewConflictError("order has no invoice to pay")
	}
	if err := o.invoice.AddPayment(payment, now); err != nil {
		return err
	}

	o.touch(now)
	return nil
}

func (o *Order) appendNote(note string) {
	if o.notes == "" {
		o.notes = note
		return
	}
	o.notes = o.notes + "\n" + note
}

func (o *Order) stamp(actorID uuid.UUID, now time.Time) {
	o.updatedBy = &actorID
	o.updatedAt = &now
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = &now
}
