// Package userrepo reads user rows for authorization and staff assignment.
// User accounts are written by the identity provider; the core never
// mutates them.
package userrepo

import (
	"evdealer/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for user rows.
type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName    string
	Email       string `gorm:"uniqueIndex"`
	PhoneNumber string
	Role        string
	IsDeleted   bool
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(
		dto.ID,
		dto.FullName,
		dto.Email,
		dto.PhoneNumber,
		user.Role(dto.Role),
		dto.IsDeleted,
	)
}
