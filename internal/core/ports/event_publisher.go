package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrderStatusChangedEvent is the envelope published after an order status
// transition commits. Consumers deduplicate on EventID.
type OrderStatusChangedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
}

// OrderEventPublisher publishes order lifecycle events to downstream
// consumers. Implementations are called only after the database commit;
// publish failures are logged by the caller, never rolled back.
type OrderEventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
}
