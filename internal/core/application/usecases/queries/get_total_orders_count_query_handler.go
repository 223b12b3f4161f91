package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetTotalOrdersCountQueryHandler counts orders from the orders table in a
// single aggregate statement.
type GetTotalOrdersCountQueryHandler struct {
	db *gorm.DB
}

// NewGetTotalOrdersCountQueryHandler creates a handler for order count
// statistics.
func NewGetTotalOrdersCountQueryHandler(db *gorm.DB) GetTotalOrdersCountQueryHandler {
	return GetTotalOrdersCountQueryHandler{db: db}
}

// Handle executes the count. Cancelled orders count; soft-deleted do not.
func (h GetTotalOrdersCountQueryHandler) Handle(
	ctx context.Context,
	query GetTotalOrdersCountQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	sql := `
		SELECT COUNT(*)
		FROM orders
		WHERE is_deleted = false`
	args := make([]any, 0)

	if query.From() != nil {
		sql += ` AND created_at >= ?`
		args = append(args, *query.From())
	}
	if query.To() != nil {
		sql += ` AND created_at <= ?`
		args = append(args, *query.To())
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
