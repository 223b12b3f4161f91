package ports

import (
	"context"

	"evdealer/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// Soft-deleted vehicles are excluded from all reads.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by its unique identifier.
	Get(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)

	// GetForUpdate retrieves a vehicle holding a row-level write lock until
	// the surrounding transaction ends. Concurrent stock mutations on the
	// same vehicle serialize on this lock.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
}
