package user_test

import (
	"testing"

	"evdealer/internal/core/domain/model/user"
	"evdealer/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("should validate known roles", func(t *testing.T) {
		for _, role := range []user.Role{user.RoleCustomer, user.RoleDealerStaff, user.RoleDealerManager} {
			require.NoError(t, role.Validate())
		}
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		err := user.Role("Admin").Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should grant staff capability to dealer personnel only", func(t *testing.T) {
		assert.False(t, user.RoleCustomer.IsStaff())
		assert.True(t, user.RoleDealerStaff.IsStaff())
		assert.True(t, user.RoleDealerManager.IsStaff())
	})
}

func TestNewUser(t *testing.T) {
	t.Run("should create user", func(t *testing.T) {
		u, err := user.NewUser(uuid.New(), "Dana Reyes", "dana@example.com", "+15550100", user.RoleDealerStaff)

		require.NoError(t, err)
		assert.Equal(t, "Dana Reyes", u.FullName())
		assert.True(t, u.IsStaff())
		assert.False(t, u.IsDeleted())
	})

	t.Run("should reject missing values", func(t *testing.T) {
		_, err := user.NewUser(uuid.Nil, "Dana Reyes", "dana@example.com", "", user.RoleCustomer)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = user.NewUser(uuid.New(), "", "dana@example.com", "", user.RoleCustomer)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = user.NewUser(uuid.New(), "Dana Reyes", "", "", user.RoleCustomer)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = user.NewUser(uuid.New(), "Dana Reyes", "dana@example.com", "", user.Role("Root"))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero value user", func(t *testing.T) {
		var u user.User

		err := u.Validate()

		require.Error(t, err)
		assert.Equal(t, user.ErrUserIsNotConstructed, err)
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("should carry the soft delete flag", func(t *testing.T) {
		u, err := user.RestoreUser(uuid.New(), "Dana Reyes", "dana@example.com", "", user.RoleCustomer, true)

		require.NoError(t, err)
		assert.True(t, u.IsDeleted())
	})
}
