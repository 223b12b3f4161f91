package commands

import (
	"context"
	"errors"

	"evdealer/internal/core/domain/model/delivery"
	"evdealer/internal/core/ports"
	"evdealer/internal/pkg/errs"
)

// CreateDeliveryCommandHandler schedules the handover of a paid order.
// The paid-payment gate and the single-delivery check read the same
// transaction the delivery is inserted on, so a concurrent cancellation or a
// second scheduling attempt cannot slip between check and insert.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      ports.Clock
}

// NewCreateDeliveryCommandHandler creates a handler for delivery scheduling.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory, clock ports.Clock) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the delivery scheduling command.
//
// Fails with Forbidden for non-staff actors, NotFound when the order is
// missing, and Conflict when the order has no paid payment or already has a
// non-deleted delivery. The new delivery starts Scheduled.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	if _, err := requireStaff(ctx, uow.UserRepository(), cmd.ActorID(), "create delivery"); err != nil {
		return err
	}

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !o.HasPaidPayment() {
		return errs.NewConflictError("cannot schedule delivery for an order without a paid payment")
	}

	deliveryRepo := uow.DeliveryRepository()
	_, err = deliveryRepo.GetByOrderID(ctx, o.ID())
	if err == nil {
		return errs.NewConflictError("delivery already exists for order")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	address := cmd.ShippingAddress()
	if address == "" {
		address = o.ShippingAddress()
	}

	d, err := delivery.NewDelivery(cmd.DeliveryID(), o.ID(), cmd.PlannedDate(), address, cmd.Notes(), now)
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
