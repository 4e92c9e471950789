//go:build unit

package user_test

import (
	"testing"

	"aparthotel-booking/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"guest", "operator", "admin"} {
		r, err := user.NewRole(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, r.String())
	}

	for _, s := range []string{"", "viewer", "Operator"} {
		_, err := user.NewRole(s)
		assert.ErrorIs(t, err, user.ErrInvalidRole, s)
	}
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleOperator))
	assert.True(t, user.RoleOperator.AtLeast(user.RoleOperator))
	assert.False(t, user.RoleGuest.AtLeast(user.RoleOperator))
	assert.False(t, user.Role("unknown").AtLeast(user.RoleGuest))
	assert.False(t, user.RoleAdmin.AtLeast(user.Role("root")))
}

func TestRole_CanManageBookings(t *testing.T) {
	tests := map[user.Role]bool{
		user.RoleGuest:    false,
		user.RoleOperator: true,
		user.RoleAdmin:    true,
		user.Role(""):     false,
	}
	for role, want := range tests {
		assert.Equal(t, want, role.CanManageBookings(), "role %q", role)
	}
}
