package http

import (
	"time"

	"evdealer/internal/core/application/usecases/queries"

	"github.com/google/uuid"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CreateOrderRequest struct {
	VehicleID       uuid.UUID `json:"vehicle_id"`
	ShippingAddress string    `json:"shipping_address"`
	Notes           string    `json:"notes"`
}

type CreateOrderResponse struct {
	ID uuid.UUID `json:"id"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type AssignStaffRequest struct {
	StaffID uuid.UUID `json:"staff_id"`
}

type RecordPaymentRequest struct {
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	PaymentIntentID string  `json:"payment_intent_id"`
}

type RecordPaymentResponse struct {
	ID uuid.UUID `json:"id"`
}

type CreateDeliveryRequest struct {
	OrderID         uuid.UUID  `json:"order_id"`
	PlannedDate     *time.Time `json:"planned_date"`
	ShippingAddress string     `json:"shipping_address"`
	Notes           string     `json:"notes"`
}

type CreateDeliveryResponse struct {
	ID uuid.UUID `json:"id"`
}

type UpdateDeliveryStatusRequest struct {
	Status      string     `json:"status"`
	PlannedDate *time.Time `json:"planned_date"`
	ActualDate  *time.Time `json:"actual_date"`
}

type OrderSummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"order_number"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"total_amount"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	VehicleModel  string    `json:"vehicle_model"`
	VehicleTrim   string    `json:"vehicle_trim"`
	StaffName     string    `json:"staff_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type InvoiceResponse struct {
	ID            uuid.UUID `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"total_amount"`
}

type PaymentResponse struct {
	ID              uuid.UUID `json:"id"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	PaymentDate     time.Time `json:"payment_date"`
	PaymentIntentID string    `json:"payment_intent_id,omitempty"`
}

type DeliveryBriefResponse struct {
	ID          uuid.UUID  `json:"id"`
	Status      string     `json:"status"`
	PlannedDate *time.Time `json:"planned_date,omitempty"`
	ActualDate  *time.Time `json:"actual_date,omitempty"`
}

type OrderDetailsResponse struct {
	OrderSummaryResponse
	ShippingAddress string                 `json:"shipping_address"`
	Notes           string                 `json:"notes,omitempty"`
	CustomerPhone   string                 `json:"customer_phone,omitempty"`
	StaffID         *uuid.UUID             `json:"staff_id,omitempty"`
	UpdatedAt       *time.Time             `json:"updated_at,omitempty"`
	Invoice         *InvoiceResponse       `json:"invoice,omitempty"`
	LatestPayment   *PaymentResponse       `json:"latest_payment,omitempty"`
	Delivery        *DeliveryBriefResponse `json:"delivery,omitempty"`
}

type DeliveryDetailsResponse struct {
	ID              uuid.UUID  `json:"id"`
	OrderID         uuid.UUID  `json:"order_id"`
	OrderNumber     string     `json:"order_number"`
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email"`
	Status          string     `json:"status"`
	PlannedDate     *time.Time `json:"planned_date,omitempty"`
	ActualDate      *time.Time `json:"actual_date,omitempty"`
	ShippingAddress string     `json:"shipping_address"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// PageResponse wraps one page of results with paging metadata.
type PageResponse[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	PageNumber int   `json:"page_number"`
	PageSize   int   `json:"page_size"`
}

type RevenueResponse struct {
	TotalRevenue float64 `json:"total_revenue"`
}

type OrdersCountResponse struct {
	TotalOrders int64 `json:"total_orders"`
}

func toOrderSummaryResponse(summary queries.OrderSummary) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:            summary.ID,
		OrderNumber:   summary.OrderNumber,
		Status:        summary.Status,
		TotalAmount:   summary.TotalAmount,
		CustomerID:    summary.CustomerID,
		CustomerName:  summary.CustomerName,
		CustomerEmail: summary.CustomerEmail,
		VehicleModel:  summary.VehicleModel,
		VehicleTrim:   summary.VehicleTrim,
		StaffName:     summary.StaffName,
		CreatedAt:     summary.CreatedAt,
	}
}

func toOrderDetailsResponse(details queries.GetOrderQueryResponse) OrderDetailsResponse {
	resp := OrderDetailsResponse{
		OrderSummaryResponse: toOrderSummaryResponse(details.OrderSummary),
		ShippingAddress:      details.ShippingAddress,
		Notes:                details.Notes,
		CustomerPhone:        details.CustomerPhone,
		StaffID:              details.StaffID,
		UpdatedAt:            details.UpdatedAt,
	}
	if details.Invoice != nil {
		resp.Invoice = &InvoiceResponse{
			ID:            details.Invoice.ID,
			InvoiceNumber: details.Invoice.InvoiceNumber,
			Status:        details.Invoice.Status,
			TotalAmount:   details.Invoice.TotalAmount,
		}
	}
	if details.LatestPayment != nil {
		resp.LatestPayment = &PaymentResponse{
			ID:              details.LatestPayment.ID,
			Amount:          details.LatestPayment.Amount,
			Status:          details.LatestPayment.Status,
			PaymentDate:     details.LatestPayment.PaymentDate,
			PaymentIntentID: details.LatestPayment.PaymentIntentID,
		}
	}
	if details.Delivery != nil {
		resp.Delivery = &DeliveryBriefResponse{
			ID:          details.Delivery.ID,
			Status:      details.Delivery.Status,
			PlannedDate: details.Delivery.PlannedDate,
			ActualDate:  details.Delivery.ActualDate,
		}
	}
	return resp
}

func toDeliveryDetailsResponse(summary queries.DeliverySummary) DeliveryDetailsResponse {
	return DeliveryDetailsResponse{
		ID:              summary.ID,
		OrderID:         summary.OrderID,
		OrderNumber:     summary.OrderNumber,
		CustomerName:    summary.CustomerName,
		CustomerEmail:   summary.CustomerEmail,
		Status:          summary.Status,
		PlannedDate:     summary.PlannedDate,
		ActualDate:      summary.ActualDate,
		ShippingAddress: summary.ShippingAddress,
		Notes:           summary.Notes,
		CreatedAt:       summary.CreatedAt,
	}
}

func toOrderPageResponse(page queries.Page[queries.OrderSummary]) PageResponse[OrderSummaryResponse] {
	items := make([]OrderSummaryResponse, 0, len(page.Items))
	for _, summary := range page.Items {
		items = append(items, toOrderSummaryResponse(summary))
	}
	return PageResponse[OrderSummaryResponse]{
		Items:      items,
		TotalCount: page.TotalCount,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}

func toDeliveryPageResponse(page queries.Page[queries.DeliverySummary]) PageResponse[DeliveryDetailsResponse] {
	items := make([]DeliveryDetailsResponse, 0, len(page.Items))
	for _, summary := range page.Items {
		items = append(items, toDeliveryDetailsResponse(summary))
	}
	return PageResponse[DeliveryDetailsResponse]{
		Items:      items,
		TotalCount: page.TotalCount,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}
