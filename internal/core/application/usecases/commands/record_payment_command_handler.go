package commands

import (
	"context"

	"evdealer/internal/core/domain/model/order"
	"evdealer/internal/core/ports"
)

// RecordPaymentCommandHandler appends a gateway-reported payment to the
// invoice's order. A paid payment flips the invoice to Paid, which opens the
// confirmation and delivery gates for the order.
type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the payment recording command.
//
// Fails with NotFound when no order owns the invoice and with Conflict when
// the invoice was already cancelled.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByInvoiceID(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}

	payment, err := order.NewPayment(cmd.PaymentID(), cmd.InvoiceID(), cmd.Amount(),
		cmd.Status(), now, cmd.PaymentIntentID())
	if err != nil {
		return err
	}

	if err = o.RecordPayment(payment, now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
