package commands

import (
	"errors"
	"fmt"

	"evdealer/internal/core/domain/model/order"
	"evdealer/internal/pkg/errs"
	"evdealer/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand carries a payment result reported by the external
// payment gateway. The core never computes payment outcomes; it only records
// them against the invoice.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID       uuid.UUID
	invoiceID       uuid.UUID
	amount          float64
	status          order.PaymentStatus
	paymentIntentID string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a payment recording command. The intent ID
// is the gateway's opaque reference and may be empty for manual payments.
func NewRecordPaymentCommand(
	paymentID, invoiceID uuid.UUID,
	amount float64,
	status order.PaymentStatus,
	paymentIntentID string,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		paymentIntentID: paymentIntentID,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setInvoiceID(invoiceID),
		cmd.setAmount(amount),
		cmd.setStatus(status),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier the payment record will be created under.
func (c RecordPaymentCommand) PaymentID() uuid.UUID {
	return c.paymentID
}

// InvoiceID returns the identifier of the invoice being paid.
func (c RecordPaymentCommand) InvoiceID() uuid.UUID {
	return c.invoiceID
}

// Amount returns the payment amount.
func (c RecordPaymentCommand) Amount() float64 {
	return c.amount
}

// Status returns the gateway-reported payment status.
func (c RecordPaymentCommand) Status() order.PaymentStatus {
	return c.status
}

// PaymentIntentID returns the gateway's opaque payment reference.
func (c RecordPaymentCommand) PaymentIntentID() string {
	return c.paymentIntentID
}

func (c *RecordPaymentCommand) setPaymentID(paymentID uuid.UUID) error {
	if paymentID == uuid.Nil {
		return errs.NewValueIsRequiredError("paymentID")
	}
	c.paymentID = paymentID
	return nil
}

func (c *RecordPaymentCommand) setInvoiceID(invoiceID uuid.UUID) error {
	if invoiceID == uuid.Nil {
		return errs.NewValueIsRequiredError("invoiceID")
	}
	c.invoiceID = invoiceID
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is not greater than 0", amount))
	}
	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setStatus(status order.PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
