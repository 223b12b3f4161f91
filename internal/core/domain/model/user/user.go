// Package user contains the actor entity for the dealer sales domain.
// Users are referenced by orders and deliveries but owned by the identity
// provider; the core only needs identity, display fields and the staff
// capability predicate.
package user

import (
	"errors"
	"fmt"

	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// Role identifies what a user is allowed to do in the dealership.
// The exact role taxonomy lives in the identity provider; the core only
// distinguishes customers from dealer personnel.
type Role string

const (
	RoleCustomer      Role = "Customer"
	RoleDealerStaff   Role = "DealerStaff"
	RoleDealerManager Role = "DealerManager"
)

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleDealerStaff, RoleDealerManager:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// IsStaff reports whether the role carries the staff capability:
// dealer staff and dealer managers may manage orders and deliveries.
func (r Role) IsStaff() bool {
	return r == RoleDealerStaff || r == RoleDealerManager
}

// User is an actor known to the dealership: a customer placing orders or a
// member of staff processing them.
type User struct {
	id          uuid.UUID
	fullName    string
	email       string
	phoneNumber string
	role        Role
	isDeleted   bool

	isConstructed bool
}

// NewUser creates a user entity with validation.
func NewUser(id uuid.UUID, fullName, email, phoneNumber string, role Role) (*User, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if fullName == "" {
		return nil, errs.NewValueIsRequiredError("fullName")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		fullName:      fullName,
		email:         email,
		phoneNumber:   phoneNumber,
		role:          role,
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id uuid.UUID, fullName, email, phoneNumber string, role Role, isDeleted bool) (*User, error) {
	u, err := NewUser(id, fullName, email, phoneNumber, role)
	if err != nil {
		return nil, err
	}
	u.isDeleted = isDeleted
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() uuid.UUID       { return u.id }
func (u *User) FullName() string    { return u.fullName }
func (u *User) Email() string       { return u.email }
func (u *User) PhoneNumber() string { return u.phoneNumber }
func (u *User) Role() Role          { return u.role }
func (u *User) IsDeleted() bool     { return u.isDeleted }

// IsStaff reports whether this user carries the staff capability.
func (u *User) IsStaff() bool {
	return u.role.IsStaff()
}
