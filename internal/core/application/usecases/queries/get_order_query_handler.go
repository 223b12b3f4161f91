package queries

import (
	"context"
	"database/sql"
	"errors"

	"evdealer/internal/core/domain/model/delivery"
	"evdealer/internal/core/domain/model/order"
	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order straight from the database,
// joining customer, staff, vehicle, invoice, latest payment and delivery
// in one statement.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the read. Returns ObjectNotFound when the order is absent
// or soft-deleted and Forbidden when a customer reads someone else's order.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	role, err := actorRole(ctx, h.db, query.ActorID(), "get order")
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT`+orderSummaryColumns+`,
			o.shipping_address,
			o.notes,
			o.staff_id,
			o.updated_at,
			c.phone_number,
			i.id,
			i.invoice_number,
			i.status,
			i.total_amount,
			lp.id,
			lp.amount,
			lp.status,
			lp.payment_date,
			lp.payment_intent_id,
			d.id,
			d.status,
			d.planned_date,
			d.actual_date
		`+orderSummaryJoins+`
		LEFT JOIN invoices i ON i.order_id = o.id
		LEFT JOIN LATERAL (
			SELECT p.id, p.amount, p.status, p.payment_date, p.payment_intent_id
			FROM payments p
			WHERE p.invoice_id = i.id
			ORDER BY p.payment_date DESC
			LIMIT 1
		) lp ON true
		LEFT JOIN deliveries d ON d.order_id = o.id AND d.is_deleted = false
		WHERE o.id = ? AND o.is_deleted = false
	`, query.OrderID()).Row()

	var resp GetOrderQueryResponse
	var orderStatus int
	var vehicleModel, vehicleTrim, staffName sql.NullString
	var notes sql.NullString
	var staffID, invoiceID, paymentID, deliveryID uuid.NullUUID
	var invoiceNumber, paymentIntentID sql.NullString
	var invoiceStatus, paymentStatus, deliveryStatus sql.NullInt64
	var invoiceTotal, paymentAmount sql.NullFloat64
	var updatedAt, paymentDate, plannedDate, actualDate sql.NullTime

	err = row.Scan(
		&resp.ID,
		&resp.OrderNumber,
		&orderStatus,
		&resp.TotalAmount,
		&resp.CreatedAt,
		&resp.CustomerID,
		&resp.CustomerName,
		&resp.CustomerEmail,
		&vehicleModel,
		&vehicleTrim,
		&staffName,
		&resp.ShippingAddress,
		&notes,
		&staffID,
		&updatedAt,
		&resp.CustomerPhone,
		&invoiceID,
		&invoiceNumber,
		&invoiceStatus,
		&invoiceTotal,
		&paymentID,
		&paymentAmount,
		&paymentStatus,
		&paymentDate,
		&paymentIntentID,
		&deliveryID,
		&deliveryStatus,
		&plannedDate,
		&actualDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	if !role.IsStaff() && resp.CustomerID != query.ActorID() {
		return GetOrderQueryResponse{}, errs.NewForbiddenError("get order")
	}

	resp.Status = order.Status(orderStatus).String()
	resp.VehicleModel = vehicleModel.String
	resp.VehicleTrim = vehicleTrim.String
	resp.StaffName = staffName.String
	resp.Notes = notes.String
	if staffID.Valid {
		id := staffID.UUID
		resp.StaffID = &id
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		resp.UpdatedAt = &t
	}
	if invoiceID.Valid {
		resp.Invoice = &InvoiceView{
			ID:            invoiceID.UUID,
			InvoiceNumber: invoiceNumber.String,
			Status:        order.InvoiceStatus(invoiceStatus.Int64).String(),
			TotalAmount:   invoiceTotal.Float64,
		}
	}
	if paymentID.Valid {
		resp.LatestPayment = &PaymentView{
			ID:              paymentID.UUID,
			Amount:          paymentAmount.Float64,
			Status:          order.PaymentStatus(paymentStatus.Int64).String(),
			PaymentDate:     paymentDate.Time,
			PaymentIntentID: paymentIntentID.String,
		}
	}
	if deliveryID.Valid {
		view := DeliveryView{
			ID:     deliveryID.UUID,
			Status: delivery.Status(deliveryStatus.Int64).String(),
		}
		if plannedDate.Valid {
			t := plannedDate.Time
			view.PlannedDate = &t
		}
		if actualDate.Valid {
			t := actualDate.Time
			view.ActualDate = &t
		}
		resp.Delivery = &view
	}

	return resp, nil
}
