// Package deliveryrepo persists delivery aggregates.
package deliveryrepo

import (
	"time"

	"evdealer/internal/core/domain/model/delivery"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting deliveries.
type DeliveryDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	Status          int       `gorm:"index"`
	PlannedDate     *time.Time
	ActualDate      *time.Time
	ShippingAddress string
	Notes           string
	IsDeleted       bool
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	UpdatedBy       *uuid.UUID `gorm:"type:uuid"`
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:              aggregate.ID(),
		OrderID:         aggregate.OrderID(),
		Status:          int(aggregate.Status()),
		PlannedDate:     aggregate.PlannedDate(),
		ActualDate:      aggregate.ActualDate(),
		ShippingAddress: aggregate.ShippingAddress(),
		Notes:           aggregate.Notes(),
		IsDeleted:       aggregate.IsDeleted(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		UpdatedBy:       aggregate.UpdatedBy(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	return delivery.RestoreDelivery(
		dto.ID,
		dto.OrderID,
		delivery.Status(dto.Status),
		dto.PlannedDate,
		dto.ActualDate,
		dto.ShippingAddress,
		dto.Notes,
		dto.IsDeleted,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.UpdatedBy,
	)
}
