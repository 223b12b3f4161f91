package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListAllOrdersQueryHandler lists orders across every customer for staff,
// applying the optional filter before counting and before paging.
type ListAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListAllOrdersQueryHandler creates a handler for staff order listings.
func NewListAllOrdersQueryHandler(db *gorm.DB) ListAllOrdersQueryHandler {
	return ListAllOrdersQueryHandler{db: db}
}

// Handle executes the listing. Returns Forbidden when the actor lacks the
// staff capability.
func (h ListAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListAllOrdersQuery,
) (Page[OrderSummary], error) {
	if err := query.Validate(); err != nil {
		return Page[OrderSummary]{}, err
	}

	if err := requireStaffReader(ctx, h.db, query.ActorID(), "list all orders"); err != nil {
		return Page[OrderSummary]{}, err
	}

	where, args := buildOrderFilter(query.Filter())

	var totalCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders o
		JOIN users c ON c.id = o.customer_id
		`+where, args...).Scan(&totalCount).Error
	if err != nil {
		return Page[OrderSummary]{}, err
	}

	pageArgs := append(args, query.PageSize(), pageOffset(query.PageNumber(), query.PageSize()))
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+orderSummaryColumns+orderSummaryJoins+`
		`+where+`
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
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

func buildOrderFilter(filter OrderFilter) (string, []any) {
	where := `WHERE o.is_deleted = false`
	args := make([]any, 0)

	if filter.CustomerID != nil {
		where += ` AND o.customer_id = ?`
		args = append(args, *filter.CustomerID)
	}
	if filter.StaffID != nil {
		where += ` AND o.staff_id = ?`
		args = append(args, *filter.StaffID)
	}
	if filter.Status != nil {
		where += ` AND o.status = ?`
		args = append(args, int(*filter.Status))
	}
	if filter.From != nil {
		where += ` AND o.created_at >= ?`
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		where += ` AND o.created_at <= ?`
		args = append(args, *filter.To)
	}
	if filter.Search != "" {
		where += ` AND (o.order_number ILIKE ? OR c.full_name ILIKE ? OR c.email ILIKE ?)`
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	return where, args
}
