package order

import (
	"errors"
	"fmt"
	"time"

	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
	// created through NewInvoice or RestoreInvoice.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice")
)

// InvoiceStatus is the billing state of an invoice.
type InvoiceStatus int

const (
	InvoiceStatusUnknown InvoiceStatus = iota

	// InvoiceStatusPending means the invoice awaits a successful payment.
	InvoiceStatusPending

	// InvoiceStatusPaid means at least one payment on the invoice succeeded.
	InvoiceStatusPaid

	// InvoiceStatusOverdue means the invoice stayed Pending past the payment
	// window. It can still be paid.
	InvoiceStatusOverdue

	// InvoiceStatusCancelled means the owning order was cancelled before
	// payment.
	InvoiceStatusCancelled
)

func getInvoiceStatusStrings() map[InvoiceStatus]string {
	return map[InvoiceStatus]string{
		InvoiceStatusUnknown:   "Unknown",
		InvoiceStatusPending:   "Pending",
		InvoiceStatusPaid:      "Paid",
		InvoiceStatusOverdue:   "Overdue",
		InvoiceStatusCancelled: "Cancelled",
	}
}

// Validate checks if the InvoiceStatus value is one of the defined states.
func (s InvoiceStatus) Validate() error {
	if s == InvoiceStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("invoiceStatus",
			fmt.Errorf("%d is not a valid invoice status", int(s)))
	}
	if _, ok := getInvoiceStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("invoiceStatus",
			fmt.Errorf("%d is not a valid invoice status", int(s)))
	}
	return nil
}

// String returns the human-readable name of the invoice status.
func (s InvoiceStatus) String() string {
	if str, ok := getInvoiceStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Invoice bills an order. Each order owns at most one invoice, and the
// invoice owns its payment records. Created Pending; becomes Paid when a
// successful payment is recorded, Overdue when it stays unpaid past the
// payment window, Cancelled when the order is cancelled before payment.
type Invoice struct {
	id          uuid.UUID
	orderID     uuid.UUID
	customerID  uuid.UUID
	number      string
	totalAmount float64
	status      InvoiceStatus
	payments    []Payment
	createdAt   time.Time
	updatedAt   *time.Time

	isConstructed bool
}

// NewInvoice creates a pending invoice for an order.
func NewInvoice(
	id, orderID, customerID uuid.UUID,
	number string,
	totalAmount float64,
	createdAt time.Time,
) (*Invoice, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if orderID == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("orderID")
	}
	if customerID == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("customerID")
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}
	if totalAmount <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%f is not greater than 0", totalAmount))
	}

	return &Invoice{
		id:            id,
		orderID:       orderID,
		customerID:    customerID,
		number:        number,
		totalAmount:   totalAmount,
		status:        InvoiceStatusPending,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreInvoice reconstructs an invoice from persistence.
func RestoreInvoice(
	id, orderID, customerID uuid.UUID,
	number string,
	totalAmount float64,
	status InvoiceStatus,
	payments []Payment,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Invoice, error) {
	inv, err := NewInvoice(id, orderID, customerID, number, totalAmount, createdAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	inv.status = status
	inv.payments = payments
	inv.updatedAt = updatedAt
	return inv, nil
}

// Validate ensures the Invoice instance was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

func (i *Invoice) ID() uuid.UUID         { return i.id }
func (i *Invoice) OrderID() uuid.UUID    { return i.orderID }
func (i *Invoice) CustomerID() uuid.UUID { return i.customerID }
func (i *Invoice) Number() string        { return i.number }
func (i *Invoice) TotalAmount() float64  { return i.totalAmount }
func (i *Invoice) Status() InvoiceStatus { return i.status }
func (i *Invoice) CreatedAt() time.Time  { return i.createdAt }
func (i *Invoice) UpdatedAt() *time.Time { return i.updatedAt }

// Payments returns the payment records of the invoice.
func (i *Invoice) Payments() []Payment {
	return i.payments
}

// HasPaidPayment reports whether any payment on the invoice succeeded.
func (i *Invoice) HasPaidPayment() bool {
	for _, p := range i.payments {
		if p.IsPaid() {
			return true
		}
	}
	return false
}

// AddPayment appends a gateway-reported payment. A successful payment marks
// the invoice Paid; recording against a cancelled invoice is a conflict.
func (i *Invoice) AddPayment(payment Payment, now time.Time) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	if payment.invoiceID != i.id {
		return errs.NewValueIsInvalidErrorWithCause("payment",
			fmt.Errorf("payment belongs to invoice %s, not %s", payment.invoiceID, i.id))
	}
	if i.status == InvoiceStatusCancelled {
		return errs.NewConflictError("cannot record a payment on a cancelled invoice")
	}

	i.payments = append(i.payments, payment)
	if payment.IsPaid() {
		i.status = InvoiceStatusPaid
	}
	i.touch(now)
	return nil
}

// MarkOverdue flags a pending invoice whose payment window has passed.
func (i *Invoice) MarkOverdue(now time.Time) error {
	if i.status != InvoiceStatusPending {
		return errs.NewConflictError(
			fmt.Sprintf("cannot mark a %s invoice overdue", i.status))
	}

	i.status = InvoiceStatusOverdue
	i.touch(now)
	return nil
}

// MarkCancelled voids the invoice when its order is cancelled. A paid invoice
// cannot be voided.
func (i *Invoice) MarkCancelled(now time.Time) error {
	if i.status == InvoiceStatusPaid {
		return errs.NewConflictError("cannot cancel a paid invoice")
	}
	if i.status == InvoiceStatusCancelled {
		return nil
	}

	i.status = InvoiceStatusCancelled
	i.touch(now)
	return nil
}

func (i *Invoice) touch(now time.Time) {
	i.updatedAt = &now
}
