package vehiclerepo

import (
	"context"
	"errors"

	"evdealer/internal/core/domain/model/vehicle"
	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVehicleRepository implements ports.VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Add saves a new vehicle to the database.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("vehicle already exists", err)
		}
		return err
	}
	return nil
}

// Update saves an existing vehicle to the database.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&VehicleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicleID", aggregate.ID())
	}
	return nil
}

// Get retrieves a vehicle by ID. Soft-deleted vehicles are treated as absent.
func (r *GormVehicleRepository) Get(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves a vehicle holding a row-level write lock for the
// remainder of the surrounding transaction. Concurrent order creations and
// cancellations against the same vehicle serialize here, so two requests can
// never both observe the last unit in stock.
func (r *GormVehicleRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormVehicleRepository) get(ctx context.Context, db *gorm.DB, id uuid.UUID) (*vehicle.Vehicle, error) {
	var dto VehicleDTO
	err := db.WithContext(ctx).First(&dto, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicleID", id)
		}
		return nil, err
	}
	return toDomain(dto)
}
