package queries

import (
	"context"

	"evdealer/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetTotalRevenueQueryHandler computes recognized revenue from the orders
// table in a single aggregate statement.
type GetTotalRevenueQueryHandler struct {
	db *gorm.DB
}

// NewGetTotalRevenueQueryHandler creates a handler for revenue statistics.
func NewGetTotalRevenueQueryHandler(db *gorm.DB) GetTotalRevenueQueryHandler {
	return GetTotalRevenueQueryHandler{db: db}
}

// Handle executes the aggregation. An empty result set yields zero.
func (h GetTotalRevenueQueryHandler) Handle(
	ctx context.Context,
	query GetTotalRevenueQuery,
) (float64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	// The status predicate is parenthesized as a unit so the optional date
	// bounds apply to both revenue-bearing statuses.
	sql := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE is_deleted = false
		  AND (status = ? OR status = ?)`
	args := []any{int(order.StatusConfirmed), int(order.StatusDelivered)}

	if query.From() != nil {
		sql += ` AND created_at >= ?`
		args = append(args, *query.From())
	}
	if query.To() != nil {
		sql += ` AND created_at <= ?`
		args = append(args, *query.To())
	}

	var total float64
	err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
