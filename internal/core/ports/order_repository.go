package ports

import (
	"context"
	"time"

	"evdealer/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every read returns the order fully loaded with its items, invoice and the
// invoice's payments, so the aggregate is never partially populated.
// Soft-deleted orders are excluded from all reads.
type OrderRepository interface {
	// Add persists a new order aggregate with its items and invoice.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including its
	// invoice and payments.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id uuid.UUID) (*order.Order, error)

	// GetByInvoiceID retrieves the order owning the given invoice.
	GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (*order.Order, error)

	// CountByNumberPrefix counts orders whose number starts with the given
	// prefix. Used to allocate the same-day sequence suffix.
	CountByNumberPrefix(ctx context.Context, prefix string) (int64, error)

	// CountInvoicesByNumberPrefix counts invoices whose number starts with
	// the given prefix. The invoice sequence is independent of the order one.
	CountInvoicesByNumberPrefix(ctx context.Context, prefix string) (int64, error)

	// GetWithPendingInvoicesBefore retrieves orders whose invoice is still
	// Pending and was created before the cutoff. Used by the overdue job.
	GetWithPendingInvoicesBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
