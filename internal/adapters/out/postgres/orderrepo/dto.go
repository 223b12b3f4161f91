// Package orderrepo persists the order aggregate: the order row, its items,
// its invoice and the invoice's payments. Every read returns the aggregate
// fully loaded so handlers never see a partially populated order.
package orderrepo

import (
	"time"

	"evdealer/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique index so concurrent same-day creations
// that allocate the same sequence number collide at insert time instead of
// silently duplicating.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber     string     `gorm:"uniqueIndex"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	StaffID         *uuid.UUID `gorm:"type:uuid;index"`
	Status          int        `gorm:"index"`
	TotalAmount     float64
	ShippingAddress string
	Notes           string
	IsDeleted       bool
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	UpdatedBy       *uuid.UUID `gorm:"type:uuid"`

	Items   []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
	Invoice *InvoiceDTO    `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one purchased vehicle line within an order.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	VehicleID uuid.UUID `gorm:"type:uuid;index"`
	UnitPrice float64
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// InvoiceDTO represents the invoice row owned by an order.
type InvoiceDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	InvoiceNumber string    `gorm:"uniqueIndex"`
	Status        int       `gorm:"index"`
	TotalAmount   float64
	CreatedAt     time.Time
	UpdatedAt     *time.Time

	Payments []PaymentDTO `gorm:"foreignKey:InvoiceID;references:ID"`
}

// TableName overrides GORM's default naming to use "invoices".
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// PaymentDTO represents one payment attempt recorded against an invoice.
type PaymentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID       uuid.UUID `gorm:"type:uuid;index"`
	Amount          float64
	Status          int
	PaymentDate     time.Time
	PaymentIntentID string
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:              aggregate.ID(),
		OrderNumber:     aggregate.Number(),
		CustomerID:      aggregate.CustomerID(),
		StaffID:         aggregate.StaffID(),
		Status:          int(aggregate.Status()),
		TotalAmount:     aggregate.TotalAmount(),
		ShippingAddress: aggregate.ShippingAddress(),
		Notes:           aggregate.Notes(),
		IsDeleted:       aggregate.IsDeleted(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		UpdatedBy:       aggregate.UpdatedBy(),
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:        item.ID(),
			OrderID:   item.OrderID(),
			VehicleID: item.VehicleID(),
			UnitPrice: item.UnitPrice(),
		})
	}

	if invoice := aggregate.Invoice(); invoice != nil {
		invoiceDTO := InvoiceDTO{
			ID:            invoice.ID(),
			OrderID:       invoice.OrderID(),
			CustomerID:    invoice.CustomerID(),
			InvoiceNumber: invoice.Number(),
			Status:        int(invoice.Status()),
			TotalAmount:   invoice.TotalAmount(),
			CreatedAt:     invoice.CreatedAt(),
			UpdatedAt:     invoice.UpdatedAt(),
		}
		for _, payment := range invoice.Payments() {
			invoiceDTO.Payments = append(invoiceDTO.Payments, PaymentDTO{
				ID:              payment.ID(),
				InvoiceID:       payment.InvoiceID(),
				Amount:          payment.Amount(),
				Status:          int(payment.Status()),
				PaymentDate:     payment.PaymentDate(),
				PaymentIntentID: payment.PaymentIntentID(),
			})
		}
		dto.Invoice = &invoiceDTO
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.RestoreItem(itemDTO.ID, itemDTO.OrderID, itemDTO.VehicleID, itemDTO.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	var invoice *order.Invoice
	if dto.Invoice != nil {
		payments := make([]order.Payment, 0, len(dto.Invoice.Payments))
		for _, paymentDTO := range dto.Invoice.Payments {
			payment, err := order.RestorePayment(
				paymentDTO.ID,
				paymentDTO.InvoiceID,
				paymentDTO.Amount,
				order.PaymentStatus(paymentDTO.Status),
				paymentDTO.PaymentDate,
				paymentDTO.PaymentIntentID,
			)
			if err != nil {
				return nil, err
			}
			payments = append(payments, payment)
		}

		restored, err := order.RestoreInvoice(
			dto.Invoice.ID,
			dto.Invoice.OrderID,
			dto.Invoice.CustomerID,
			dto.Invoice.InvoiceNumber,
			dto.Invoice.TotalAmount,
			order.InvoiceStatus(dto.Invoice.Status),
			payments,
			dto.Invoice.CreatedAt,
			dto.Invoice.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		invoice = restored
	}

	return order.RestoreOrder(
		dto.ID,
		dto.OrderNumber,
		dto.CustomerID,
		dto.StaffID,
		order.Status(dto.Status),
		dto.TotalAmount,
		dto.ShippingAddress,
		dto.Notes,
		items,
		invoice,
		dto.IsDeleted,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.UpdatedBy,
	)
}
