package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListMyOrdersQueryHandler lists a customer's own orders from the database.
// No role lookup is needed: the result set is already scoped to the actor.
type ListMyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListMyOrdersQueryHandler creates a handler for customer order listings.
func NewListMyOrdersQueryHandler(db *gorm.DB) ListMyOrdersQueryHandler {
	return ListMyOrdersQueryHandler{db: db}
}

// Handle executes the listing. Returns one page of the actor's non-deleted
// orders ordered by creation time, newest first.
func (h ListMyOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListMyOrdersQuery,
) (Page[OrderSummary], error) {
	if err := query.Validate(); err != nil {
		return Page[OrderSummary]{}, err
	}

	var totalCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders o
		WHERE o.customer_id = ? AND o.is_deleted = false
	`, query.ActorID()).Scan(&totalCount).Error
	if err != nil {
		return Page[OrderSummary]{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+orderSummaryColumns+orderSummaryJoins+`
		WHERE o.customer_id = ? AND o.is_deleted = false
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`, query.ActorID(), query.PageSize(), pageOffset(query.PageNumber(), query.PageSize())).Rows()
	if err != nil {
		return Page[OrderSummary]{}, err
	}
	defer rows.Close()

	items := make([]OrderSummary, 0)
	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows)
		if scanErr != nil {
			return Page[OrderSummary]{}, scanErr
		}
		items = append(items, summary)
	}
	if err = rows.Err(); err != nil {
		return Page[OrderSummary]{}, err
	}

	return Page[OrderSummary]{
		Items:      items,
		TotalCount: totalCount,
		PageNumber: query.PageNumber(),
		PageSize:   query.PageSize(),
	}, nil
}
