//go:build unit || e2e

package builder

import (
	"aparthotel-booking/internal/domain/auth"
	reqdto "aparthotel-booking/internal/handler/dto/request"
)

// AuthBuilder produces a login for the default fixture user.
type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{Email: "test@example.com", Password: "password123"}
}

func (a *AuthBuilder) WithPassword(p string) *AuthBuilder { a.Password = p; return a }

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: a.Email, Password: a.Password}
}

// BuildCredentials panics on invalid input; use BuildDTO to exercise validation.
func (a *AuthBuilder) BuildCredentials() auth.Credentials {
	c, err := auth.NewCredentials(a.Email, a.Password)
	if err != nil {
		panic(err)
	}
	return c
}
