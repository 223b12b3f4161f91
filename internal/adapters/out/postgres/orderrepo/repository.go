package orderrepo

import (
	"context"
	"errors"
	"time"

	"evdealer/internal/core/domain/model/order"
	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its items and invoice in one statement batch.
// A unique-index collision on the order or invoice number surfaces as a
// Conflict error; callers treat it like any other same-day numbering race.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order number already allocated", err)
		}
		return err
	}
	return nil
}

// Update saves an existing order aggregate, upserting its items, invoice and
// payments alongside the order row.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order number already allocated", err)
		}
		return err
	}
	return nil
}

// Get retrieves an order by ID with items, invoice and payments eagerly
// loaded. Soft-deleted orders are treated as absent.
func (r *GormOrderRepository) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var dto OrderDTO
	err := r.preloaded(ctx).First(&dto, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id)
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetByInvoiceID retrieves the order owning the given invoice.
func (r *GormOrderRepository) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (*order.Order, error) {
	var invoiceDTO InvoiceDTO
	err := r.db.WithContext(ctx).First(&invoiceDTO, "id = ?", invoiceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoiceID", invoiceID)
		}
		return nil, err
	}
	return r.Get(ctx, invoiceDTO.OrderID)
}

// CountByNumberPrefix counts orders whose number starts with the prefix.
// Soft-deleted orders still count: their numbers stay allocated.
func (r *GormOrderRepository) CountByNumberPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("order_number LIKE ?", prefix+"%").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountInvoicesByNumberPrefix counts invoices whose number starts with the
// prefix. The invoice sequence runs independently of the order sequence.
func (r *GormOrderRepository) CountInvoicesByNumberPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&InvoiceDTO{}).
		Where("invoice_number LIKE ?", prefix+"%").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetWithPendingInvoicesBefore retrieves non-deleted orders whose invoice is
// still Pending and was created before the cutoff. Used by the overdue sweep.
func (r *GormOrderRepository) GetWithPendingInvoicesBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	var orderIDs []uuid.UUID
	err := r.db.WithContext(ctx).Model(&InvoiceDTO{}).
		Where("status = ? AND created_at < ?", int(order.InvoiceStatusPending), cutoff).
		Pluck("order_id", &orderIDs).Error
	if err != nil {
		return nil, err
	}
	if len(orderIDs) == 0 {
		return []*order.Order{}, nil
	}

	var dtos []OrderDTO
	err = r.preloaded(ctx).
		Where("id IN ? AND is_deleted = false", orderIDs).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items").
		Preload("Invoice").
		Preload("Invoice.Payments")
}
