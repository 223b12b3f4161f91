// Package vehiclerepo persists vehicle aggregates, including the stock
// counter that order creation and cancellation mutate.
package vehiclerepo

import (
	"time"

	"evdealer/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicles.
type VehicleDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ModelName string
	TrimName  string
	ModelYear int
	BasePrice float64
	Stock     int
	IsActive  bool
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:        aggregate.ID(),
		ModelName: aggregate.ModelName(),
		TrimName:  aggregate.TrimName(),
		ModelYear: aggregate.ModelYear(),
		BasePrice: aggregate.BasePrice(),
		Stock:     aggregate.Stock(),
		IsActive:  aggregate.IsActive(),
		IsDeleted: aggregate.IsDeleted(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	return vehicle.RestoreVehicle(
		dto.ID,
		dto.ModelName,
		dto.TrimName,
		dto.ModelYear,
		dto.BasePrice,
		dto.Stock,
		dto.IsActive,
		dto.IsDeleted,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
