package commands

import (
	"context"
	"log/slog"
	"time"

	"evdealer/internal/core/domain/model/order"
	"evdealer/internal/core/ports"

	"github.com/google/uuid"
)

// publishStatusChanged emits an order status event after the transaction has
// committed. The commit is the source of truth; a publish failure is logged
// and swallowed so the caller still sees success.
func publishStatusChanged(
	ctx context.Context,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
	o *order.Order,
	now time.Time,
) {
	event := ports.OrderStatusChangedEvent{
		EventID:     uuid.New(),
		OccurredAt:  now,
		OrderID:     o.ID(),
		OrderNumber: o.Number(),
		Status:      o.Status().String(),
	}
	if err := publisher.PublishOrderStatusChanged(ctx, event); err != nil {
		logger.WarnContext(ctx, "failed to publish order status event",
			slog.String("order_id", o.ID().String()),
			slog.String("status", event.Status),
			slog.Any("error", err))
	}
}
