package commands

import (
	"context"
	"log/slog"

	"evdealer/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation with compensating
// stock restoration. One unit of stock is returned per line item inside the
// same transaction as the status change; a vehicle missing during
// restoration aborts the whole operation with a Fatal error.
type CancelOrderCommandHandler struct {
	uowFactory CancelOrderUoWFactory
	publisher  ports.OrderEventPublisher
	clock      ports.Clock
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory CancelOrderUoWFactory,
	publisher ports.OrderEventPublisher,
	clock ports.Clock,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "cancel_order"),
	}
}

// Handle processes the cancellation command.
//
// Fails with Forbidden unless the actor owns the order or carries the staff
// capability, and with Conflict when the order is already terminal or has a
// paid payment. The "no paid payment" check and the stock restoration read
// the same transaction snapshot as the order update.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	vehicleRepo := uow.VehicleRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = requireOwnerOrStaff(ctx, uow.UserRepository(), cmd.ActorID(), o.CustomerID(), "cancel order"); err != nil {
		return err
	}

	if err = o.Cancel(cmd.ActorID(), cmd.Reason(), now); err != nil {
		return err
	}

	for _, item := range o.Items() {
		v, err := vehicleRepo.GetForUpdate(ctx, item.VehicleID())
		if err != nil {
			return notFoundAsFatal(err, "vehicle", item.VehicleID())
		}
		if err = v.RestoreUnit(now); err != nil {
			return err
		}
		if err = vehicleRepo.Update(ctx, v); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order cancelled",
		slog.String("order_id", o.ID().String()),
		slog.String("order_number", o.Number()),
		slog.Int("restored_items", len(o.Items())))

	publishStatusChanged(ctx, h.publisher, h.logger, o, now)
	return nil
}
