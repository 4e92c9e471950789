//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"aparthotel-booking/internal/domain/user"
	"aparthotel-booking/internal/pkg/config"
	"aparthotel-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens signed with the app's secret, bypassing login.
type JWTHelper struct {
	secret  string
	access  time.Duration
	refresh time.Duration
}

func NewJWTHelper(t *testing.T, cfg config.JWTConfig) *JWTHelper {
	t.Helper()
	access, err := time.ParseDuration(cfg.AccessTokenDuration)
	require.NoError(t, err)
	refresh, err := time.ParseDuration(cfg.RefreshTokenDuration)
	require.NoError(t, err)
	return &JWTHelper{secret: cfg.Secret, access: access, refresh: refresh}
}

func (h *JWTHelper) RefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.secret, h.access, h.refresh).GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

// ExpiredAccessToken returns an access token that is already past its expiry.
func (h *JWTHelper) ExpiredAccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.secret, time.Millisecond, h.refresh).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
