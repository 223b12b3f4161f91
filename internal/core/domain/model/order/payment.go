package order

import (
	"errors"
	"fmt"
	"time"

	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through NewPayment or RestorePayment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")
)

// PaymentStatus is the outcome of a payment attempt as reported by the
// external payment gateway. The core never computes these values.
type PaymentStatus int

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentStatusPending
	PaymentStatusPaid
	PaymentStatusFailed
	PaymentStatusRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown:  "Unknown",
		PaymentStatusPending:  "Pending",
		PaymentStatusPaid:     "Paid",
		PaymentStatusFailed:   "Failed",
		PaymentStatusRefunded: "Refunded",
	}
}

// PaymentStatusFromString parses a payment status name as reported by the
// gateway callback.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusStrings() {
		if name == s && status != PaymentStatusUnknown {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus value is one of the defined states.
func (s PaymentStatus) Validate() error {
	if s == PaymentStatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", int(s)))
	}
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", int(s)))
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Payment records one payment attempt against an invoice. It is an immutable
// fact: the gateway reports a new Payment per attempt rather than mutating an
// existing one.
type Payment struct {
	id              uuid.UUID
	invoiceID       uuid.UUID
	amount          float64
	status          PaymentStatus
	paymentDate     time.Time
	paymentIntentID string

	isConstructed bool
}

// NewPayment creates a payment record with validation. The paymentIntentID is
// the gateway's opaque reference and may be empty for manual payments.
func NewPayment(
	id, invoiceID uuid.UUID,
	amount float64,
	status PaymentStatus,
	paymentDate time.Time,
	paymentIntentID string,
) (Payment, error) {
	if id == uuid.Nil {
		return Payment{}, errs.NewValueIsRequiredError("id")
	}
	if invoiceID == uuid.Nil {
		return Payment{}, errs.NewValueIsRequiredError("invoiceID")
	}
	if amount <= 0 {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is not greater than 0", amount))
	}
	if err := status.Validate(); err != nil {
		return Payment{}, err
	}

	return Payment{
		id:              id,
		invoiceID:       invoiceID,
		amount:          amount,
		status:          status,
		paymentDate:     paymentDate,
		paymentIntentID: paymentIntentID,
		isConstructed:   true,
	}, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id, invoiceID uuid.UUID,
	amount float64,
	status PaymentStatus,
	paymentDate time.Time,
	paymentIntentID string,
) (Payment, error) {
	return NewPayment(id, invoiceID, amount, status, paymentDate, paymentIntentID)
}

// Validate ensures the Payment instance was properly constructed.
func (p Payment) Validate() error {
	if !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p Payment) ID() uuid.UUID           { return p.id }
func (p Payment) InvoiceID() uuid.UUID    { return p.invoiceID }
func (p Payment) Amount() float64         { return p.amount }
func (p Payment) Status() PaymentStatus   { return p.status }
func (p Payment) PaymentDate() time.Time  { return p.paymentDate }
func (p Payment) PaymentIntentID() string { return p.paymentIntentID }

// IsPaid reports whether this payment succeeded.
func (p Payment) IsPaid() bool {
	return p.status == PaymentStatusPaid
}
