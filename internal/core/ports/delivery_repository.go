package ports

import (
	"context"

	"evdealer/internal/core/domain/model/delivery"

	"github.com/google/uuid"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates. Soft-deleted deliveries are excluded from all reads.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier.
	Get(ctx context.Context, id uuid.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the non-deleted delivery of an order, or an
	// ObjectNotFound error when the order has none.
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*delivery.Delivery, error)
}
