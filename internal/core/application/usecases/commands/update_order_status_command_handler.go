package commands

import (
	"context"
	"log/slog"

	"evdealer/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles staff-requested order status
// transitions. The payment gate for confirmation is evaluated on the order
// loaded inside the handler's transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory StaffOrderUoWFactory
	publisher  ports.OrderEventPublisher
	clock      ports.Clock
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// changes.
func NewUpdateOrderStatusCommandHandler(
	uowFactory StaffOrderUoWFactory,
	publisher ports.OrderEventPublisher,
	clock ports.Clock,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "update_order_status"),
	}
}

// Handle processes the status change command.
//
// Fails with Forbidden for non-staff actors and with Conflict when the
// transition is not allowed, including confirming an order that has no paid
// payment.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if _, err := requireStaff(ctx, uow.UserRepository(), cmd.ActorID(), "update order status"); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ChangeStatus(cmd.ActorID(), cmd.NewStatus(), cmd.Notes(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChanged(ctx, h.publisher, h.logger, o, now)
	return nil
}
