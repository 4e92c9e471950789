//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"aparthotel-booking/internal/domain/user"
	"aparthotel-booking/internal/pkg/errs"
	"aparthotel-booking/internal/pkg/jwt"
	"aparthotel-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator_Authenticate(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Minute, time.Hour)
	v := usecase.NewTokenValidator(svc)
	userID := uuid.New()

	t.Run("access token yields identity", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleOperator)
		require.NoError(t, err)

		id, err := v.Authenticate(token)
		require.NoError(t, err)
		assert.Equal(t, usecase.Identity{UserID: userID, Role: user.RoleOperator}, id)
	})

	t.Run("refresh token refused", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(userID, user.RoleGuest)
		require.NoError(t, err)

		_, err = v.Authenticate(token)
		assert.True(t, errs.Is(err, usecase.ErrNotAccessToken))
	})

	t.Run("foreign signature refused", func(t *testing.T) {
		token, err := jwt.NewService("other-secret", time.Minute, time.Hour).GenerateAccessToken(userID, user.RoleGuest)
		require.NoError(t, err)

		_, err = v.Authenticate(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
