package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListAllDeliveriesQueryHandler lists deliveries across every order for
// staff, applying the optional filter before counting and before paging.
type ListAllDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewListAllDeliveriesQueryHandler creates a handler for staff delivery
// listings.
func NewListAllDeliveriesQueryHandler(db *gorm.DB) ListAllDeliveriesQueryHandler {
	return ListAllDeliveriesQueryHandler{db: db}
}

// Handle executes the listing. Returns Forbidden when the actor lacks the
// staff capability.
func (h ListAllDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListAllDeliveriesQuery,
) (Page[DeliverySummary], error) {
	if err := query.Validate(); err != nil {
		return Page[DeliverySummary]{}, err
	}

	if err := requireStaffReader(ctx, h.db, query.ActorID(), "list all deliveries"); err != nil {
		return Page[DeliverySummary]{}, err
	}

	where, args := buildDeliveryFilter(query.Filter())

	var totalCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		JOIN users c ON c.id = o.customer_id
		`+where, args...).Scan(&totalCount).Error
	if err != nil {
		return Page[DeliverySummary]{}, err
	}

	pageArgs := append(args, query.PageSize(), pageOffset(query.PageNumber(), query.PageSize()))
	rows, err := h.db.WithContext(ctx).Raw(deliverySummarySelect+`
		`+where+`
		ORDER BY d.created_at DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return Page[DeliverySummary]{}, err
	}
	defer rows.Close()

	items := make([]DeliverySummary, 0)
	for rows.Next() {
		summary, scanErr := scanDeliverySummaryRow(rows)
		if scanErr != nil {
			return Page[DeliverySummary]{}, scanErr
		}
		items = append(items, summary)
	}
	if err = rows.Err(); err != nil {
		return Page[DeliverySummary]{}, err
	}

	return Page[DeliverySummary]{
		Items:      items,
		TotalCount: totalCount,
		PageNumber: query.PageNumber(),
		PageSize:   query.PageSize(),
	}, nil
}

func buildDeliveryFilter(filter DeliveryFilter) (string, []any) {
	where := `WHERE d.is_deleted = false`
	args := make([]any, 0)

	if filter.Status != nil {
		where += ` AND d.status = ?`
		args = append(args, int(*filter.Status))
	}
	if filter.From != nil {
		where += ` AND (d.planned_date >= ? OR d.actual_date >= ?)`
		args = append(args, *filter.From, *filter.From)
	}
	if filter.To != nil {
		where += ` AND (d.planned_date <= ? OR d.actual_date <= ?)`
		args = append(args, *filter.To, *filter.To)
	}
	if filter.Search != "" {
		where += ` AND (o.order_number ILIKE ? OR c.full_name ILIKE ? OR c.email ILIKE ?)`
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	return where, args
}
