package commands

import (
	"context"
	"log/slog"

	"evdealer/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler handles delivery lifecycle transitions.
// When a delivery completes, the owning order is forced to Delivered inside
// the same transaction, stamped with the same actor.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.OrderEventPublisher
	clock      ports.Clock
	logger     *slog.Logger
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// status changes.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.OrderEventPublisher,
	clock ports.Clock,
	logger *slog.Logger,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "update_delivery_status"),
	}
}

// Handle processes the delivery status change command.
//
// Fails with Forbidden for non-staff actors, NotFound when the delivery is
// missing, and Conflict for transitions out of terminal states. On Delivered
// the actual date defaults to the current time when not supplied.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	if _, err := requireStaff(ctx, uow.UserRepository(), cmd.ActorID(), "update delivery status"); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	becameDelivered, err := d.ChangeStatus(cmd.ActorID(), cmd.NewStatus(), cmd.PlannedDate(), cmd.ActualDate(), now)
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	if !becameDelivered {
		return uow.Commit(ctx)
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, d.OrderID())
	if err != nil {
		return notFoundAsFatal(err, "order", d.OrderID())
	}

	if err = o.MarkDelivered(cmd.ActorID(), now); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "delivery completed",
		slog.String("delivery_id", d.ID().String()),
		slog.String("order_id", o.ID().String()))

	publishStatusChanged(ctx, h.publisher, h.logger, o, now)
	return nil
}
