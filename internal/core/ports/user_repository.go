package ports

import (
	"context"

	"evdealer/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserRepository defines the read contract for users. Users are owned by the
// identity provider; the core only reads them for authorization and staff
// assignment checks. Soft-deleted users are excluded.
type UserRepository interface {
	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
}
