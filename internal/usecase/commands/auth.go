package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"aparthotel-booking/internal/domain/auth"
	"aparthotel-booking/internal/domain/user"
	"aparthotel-booking/internal/pkg/errs"
	"aparthotel-booking/internal/pkg/jwt"
	"aparthotel-booking/internal/pkg/password"
	"aparthotel-booking/internal/usecase/queries"
	"aparthotel-booking/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commands

type AuthCommands interface {
	Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{uow: uow, readStore: readStore, jwtService: jwtService}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error) {
	account, err := a.authenticate(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.issue(account.ID, role)
	if err != nil {
		return nil, err
	}

	a.touchLastLogin(ctx, account.ID)

	return &LoginResult{UserID: account.ID, Role: role, TokenPair: pair}, nil
}

// RefreshToken re-reads the account so deactivation and role changes apply at the next rotation.
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	account, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || account == nil {
		return nil, ErrUserNotFound
	}
	if !account.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	return a.issue(account.ID, role)
}

// authenticate answers ErrInvalidCredentials for unknown emails too, so callers cannot enumerate accounts.
func (a *authCommandsImpl) authenticate(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	account, hash, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	switch {
	case err != nil:
		return nil, ErrInvalidCredentials
	case account == nil:
		return nil, ErrUserNotFound
	case !account.IsActive:
		return nil, ErrUserInactive
	}

	if err := password.Verify(hash, credentials.Password().Value()); err != nil {
		if !errs.Is(err, password.ErrMismatch) {
			slog.Error("stored password hash unusable", "user_id", account.ID, "error", err.Error())
		}
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	access, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refresh, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// touchLastLogin is best effort; a failed stamp never fails the login.
func (a *authCommandsImpl) touchLastLogin(ctx context.Context, userID uuid.UUID) {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), userID)
	})
	if err != nil {
		slog.Warn("failed to update last login", "user_id", userID, "error", err.Error())
	}
}
