package queries

import (
	"context"
	"database/sql"
	"errors"

	"evdealer/internal/core/domain/model/delivery"
	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryQueryHandler reads a single delivery joined with its owning
// order and customer.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single-delivery reads.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the read. Returns ObjectNotFound when no matching
// non-deleted delivery exists and Forbidden when a customer reads a delivery
// belonging to another customer's order.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (DeliverySummary, error) {
	if err := query.Validate(); err != nil {
		return DeliverySummary{}, err
	}

	role, err := actorRole(ctx, h.db, query.ActorID(), "get delivery")
	if err != nil {
		return DeliverySummary{}, err
	}

	where := `d.id = ?`
	lookupParam := "deliveryID"
	var key uuid.UUID
	if query.DeliveryID() != nil {
		key = *query.DeliveryID()
	} else {
		where = `d.order_id = ?`
		key = *query.OrderID()
		lookupParam = "orderID"
	}

	row := h.db.WithContext(ctx).Raw(deliverySummarySelect+`
		WHERE `+where+` AND d.is_deleted = false
	`, key).Row()

	summary, err := scanDeliverySummaryRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DeliverySummary{}, errs.NewObjectNotFoundError(lookupParam, key)
		}
		return DeliverySummary{}, err
	}

	if !role.IsStaff() && summary.CustomerID != query.ActorID() {
		return DeliverySummary{}, errs.NewForbiddenError("get delivery")
	}

	return summary, nil
}

const deliverySummarySelect = `
	SELECT
		d.id,
		d.order_id,
		d.status,
		d.planned_date,
		d.actual_date,
		d.shipping_address,
		d.notes,
		d.created_at,
		o.order_number,
		o.customer_id,
		c.full_name,
		c.email
	FROM deliveries d
	JOIN orders o ON o.id = d.order_id
	JOIN users c ON c.id = o.customer_id`

type deliveryRowScanner interface {
	Scan(dest ...any) error
}

func scanDeliverySummaryRow(row deliveryRowScanner) (DeliverySummary, error) {
	var summary DeliverySummary
	var status int
	var notes sql.NullString
	var plannedDate, actualDate sql.NullTime

	err := row.Scan(
		&summary.ID,
		&summary.OrderID,
		&status,
		&plannedDate,
		&actualDate,
		&summary.ShippingAddress,
		&notes,
		&summary.CreatedAt,
		&summary.OrderNumber,
		&summary.CustomerID,
		&summary.CustomerName,
		&summary.CustomerEmail,
	)
	if err != nil {
		return DeliverySummary{}, err
	}

	summary.Status = delivery.Status(status).String()
	summary.Notes = notes.String
	if plannedDate.Valid {
		t := plannedDate.Time
		summary.PlannedDate = &t
	}
	if actualDate.Valid {
		t := actualDate.Time
		summary.ActualDate = &t
	}
	return summary, nil
}
