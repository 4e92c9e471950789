//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"aparthotel-booking/internal/domain/user"
	"aparthotel-booking/internal/handler/middleware"
	"aparthotel-booking/internal/pkg/config"
	"aparthotel-booking/internal/pkg/errs"
	"aparthotel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenTable map[string]usecase.Identity

func (t tokenTable) Authenticate(token string) (usecase.Identity, error) {
	id, ok := t[token]
	if !ok {
		return usecase.Identity{}, errs.New("unknown token")
	}
	return id, nil
}

func newRouter(t *testing.T, tokens tokenTable) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := middleware.NewAuthMiddleware(tokens)
	r := gin.New()
	r.Use(middleware.ErrorHandler())

	whoami := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.String(http.StatusOK, id.String()+" "+role.String())
	}
	r.GET("/me", auth.RequireAuth(), whoami)
	r.GET("/desk", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleOperator), whoami)
	r.GET("/units", auth.OptionalAuth(), whoami)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	guest := usecase.Identity{UserID: uuid.New(), Role: user.RoleGuest}
	operator := usecase.Identity{UserID: uuid.New(), Role: user.RoleOperator}
	r := newRouter(t, tokenTable{"g": guest, "o": operator})

	tests := []struct {
		name     string
		path     string
		header   string
		cookie   string
		wantCode int
		wantBody string
	}{
		{name: "bearer header", path: "/me", header: "Bearer g", wantCode: http.StatusOK, wantBody: guest.UserID.String() + " guest"},
		{name: "cookie wins over header", path: "/me", header: "Bearer g", cookie: "o", wantCode: http.StatusOK, wantBody: operator.UserID.String() + " operator"},
		{name: "no token", path: "/me", wantCode: http.StatusUnauthorized},
		{name: "unknown token", path: "/me", header: "Bearer nope", wantCode: http.StatusUnauthorized},
		{name: "basic scheme ignored", path: "/me", header: "Basic g", wantCode: http.StatusUnauthorized},
		{name: "guest at the desk", path: "/desk", header: "Bearer g", wantCode: http.StatusForbidden},
		{name: "operator at the desk", path: "/desk", header: "Bearer o", wantCode: http.StatusOK},
		{name: "optional without token", path: "/units", wantCode: http.StatusOK, wantBody: uuid.Nil.String() + " "},
		{name: "optional with bad token", path: "/units", header: "Bearer nope", wantCode: http.StatusOK, wantBody: uuid.Nil.String() + " "},
		{name: "optional with token", path: "/units", header: "Bearer g", wantCode: http.StatusOK, wantBody: guest.UserID.String() + " guest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}

	preflight := func(r *gin.Engine, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("listed origin keeps credentials", func(t *testing.T) {
		c := cfg
		c.AllowOrigins = []string{"https://book.example.com"}
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(c))

		w := preflight(r, "https://book.example.com")
		assert.Equal(t, "https://book.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		c := cfg
		c.AllowOrigins = []string{"*"}
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(c))

		w := preflight(r, "https://anywhere.example.org")
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "15:04:05"})
	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, middleware.GetRequestID(c)) })

	t.Run("echoes the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "front-desk-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "front-desk-42", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "front-desk-42", w.Body.String())
	})

	t.Run("generates one when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(middleware.RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
	})
}
