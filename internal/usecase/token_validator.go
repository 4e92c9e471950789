package usecase

import (
	"aparthotel-booking/internal/domain/user"
	"aparthotel-booking/internal/pkg/errs"
	"aparthotel-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrNotAccessToken = errs.New("token is not an access token")

// Identity is the caller an access token speaks for.
type Identity struct {
	UserID uuid.UUID
	Role   user.Role
}

type TokenValidator interface {
	Authenticate(token string) (Identity, error)
}

type accessTokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &accessTokenValidator{jwt: jwtService}
}

// Authenticate refuses refresh tokens so a long-lived token cannot stand in for a session.
func (v *accessTokenValidator) Authenticate(token string) (Identity, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return Identity{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return Identity{}, ErrNotAccessToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Identity{}, errs.Wrap(err, "access token role")
	}
	return Identity{UserID: claims.UserID, Role: role}, nil
}
