//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"aparthotel-booking/internal/handler/dto/request"
	"aparthotel-booking/tests/common/dbtest"
	"aparthotel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is what dbtest.CreateTestUser hashes for every fixture user.
const DefaultPassword = "password123"

// LoginUser signs in through the API and returns the access token from its cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	c := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, c, "access_token cookie not set")
	require.NotEmpty(t, c.Value)
	return c.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, DefaultPassword)
}
