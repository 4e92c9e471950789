//go:build unit || e2e

package builder

import (
	"time"

	"aparthotel-booking/internal/domain/user"
	sqlc "aparthotel-booking/internal/infra/sqlc/generated"
	"aparthotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// UserBuilder starts as an active guest account; each Build call mints a fresh ID.
type UserBuilder struct {
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         string(user.RoleGuest),
		IsActive:     true,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder    { u.Email = email; return u }
func (u *UserBuilder) WithRole(role string) *UserBuilder      { u.Role = role; return u }
func (u *UserBuilder) WithPasswordHash(h string) *UserBuilder { u.PasswordHash = h; return u }
func (u *UserBuilder) AsOperator() *UserBuilder               { return u.WithRole(string(user.RoleOperator)) }
func (u *UserBuilder) AsInactive() *UserBuilder               { u.IsActive = false; return u }

// BuildInfra returns the users row as sqlc scans it.
func (u *UserBuilder) BuildInfra() sqlc.Users {
	stamp := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	return sqlc.Users{
		ID:           uuid.New(),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    stamp,
		UpdatedAt:    stamp,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{ID: uuid.New(), Email: u.Email, Role: u.Role, IsActive: u.IsActive}
}
