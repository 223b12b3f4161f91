package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"evdealer/internal/core/domain/model/order"
	"evdealer/internal/core/domain/model/user"
	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderSummary is the list-view read model for an order. Display fields for
// the customer, vehicle and assigned staff member are joined at read time
// and never persisted redundantly.
type OrderSummary struct {
	ID            uuid.UUID
	OrderNumber   string
	Status        string
	TotalAmount   float64
	CustomerID    uuid.UUID
	CustomerName  string
	CustomerEmail string
	VehicleModel  string
	VehicleTrim   string
	StaffName     string
	CreatedAt     time.Time
}

// InvoiceView is the read model for an order's invoice.
type InvoiceView struct {
	ID            uuid.UUID
	InvoiceNumber string
	Status        string
	TotalAmount   float64
}

// PaymentView is the read model for the most recent payment on an invoice.
type PaymentView struct {
	ID              uuid.UUID
	Amount          float64
	Status          string
	PaymentDate     time.Time
	PaymentIntentID string
}

// DeliveryView is the read model for the delivery attached to an order.
type DeliveryView struct {
	ID          uuid.UUID
	Status      string
	PlannedDate *time.Time
	ActualDate  *time.Time
}

// DeliverySummary is the list-view read model for a delivery, joined with
// the owning order and its customer for display.
type DeliverySummary struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	OrderNumber     string
	CustomerID      uuid.UUID
	CustomerName    string
	CustomerEmail   string
	Status          string
	PlannedDate     *time.Time
	ActualDate      *time.Time
	ShippingAddress string
	Notes           string
	CreatedAt       time.Time
}

// actorRole resolves the role of the acting user. An unknown or soft-deleted
// actor yields Forbidden so read endpoints cannot be used to probe for data.
func actorRole(ctx context.Context, db *gorm.DB, actorID uuid.UUID, action string) (user.Role, error) {
	row := db.WithContext(ctx).Raw(`
		SELECT role
		FROM users
		WHERE id = ? AND is_deleted = false
	`, actorID).Row()

	var role string
	if err := row.Scan(&role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errs.NewForbiddenError(action)
		}
		return "", err
	}
	return user.Role(role), nil
}

// requireStaffReader ensures the actor carries the staff capability before a
// cross-customer listing is served.
func requireStaffReader(ctx context.Context, db *gorm.DB, actorID uuid.UUID, action string) error {
	role, err := actorRole(ctx, db, actorID, action)
	if err != nil {
		return err
	}
	if !role.IsStaff() {
		return errs.NewForbiddenError(action)
	}
	return nil
}

// orderSummaryColumns lists the SELECT columns scanned by scanOrderSummary.
// The vehicle join picks the first order item; orders carry exactly one item
// but the listing stays well defined either way.
const orderSummaryColumns = `
	o.id,
	o.order_number,
	o.status,
	o.total_amount,
	o.created_at,
	o.customer_id,
	c.full_name,
	c.email,
	vi.model_name,
	vi.trim_name,
	s.full_name`

const orderSummaryJoins = `
	FROM orders o
	JOIN users c ON c.id = o.customer_id
	LEFT JOIN users s ON s.id = o.staff_id
	LEFT JOIN LATERAL (
		SELECT v.model_name, v.trim_name
		FROM order_items oi
		JOIN vehicles v ON v.id = oi.vehicle_id
		WHERE oi.order_id = o.id
		ORDER BY oi.id
		LIMIT 1
	) vi ON true`

func scanOrderSummary(rows *sql.Rows) (OrderSummary, error) {
	var summary OrderSummary
	var status int
	var vehicleModel, vehicleTrim, staffName sql.NullString

	err := rows.Scan(
		&summary.ID,
		&summary.OrderNumber,
		&status,
		&summary.TotalAmount,
		&summary.CreatedAt,
		&summary.CustomerID,
		&summary.CustomerName,
		&summary.CustomerEmail,
		&vehicleModel,
		&vehicleTrim,
		&staffName,
	)
	if err != nil {
		return OrderSummary{}, err
	}

	summary.Status = order.Status(status).String()
	summary.VehicleModel = vehicleModel.String
	summary.VehicleTrim = vehicleTrim.String
	summary.StaffName = staffName.String
	return summary, nil
}
