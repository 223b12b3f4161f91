package userrepo

import (
	"context"
	"errors"

	"evdealer/internal/core/domain/model/user"
	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Get retrieves a user by ID. Soft-deleted users are treated as absent.
func (r *GormUserRepository) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userID", id)
		}
		return nil, err
	}
	return toDomain(dto)
}
