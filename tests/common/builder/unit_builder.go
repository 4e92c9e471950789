//go:build unit || e2e

package builder

import (
	"time"

	"aparthotel-booking/internal/domain/unit"
	sqlc "aparthotel-booking/internal/infra/sqlc/generated"
	"aparthotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UnitBuilder struct {
	ID            uuid.UUID
	Name          string
	MaxGuests     int
	Bedrooms      int
	Bathrooms     int
	PricePerNight int64
	IsAvailable   bool
}

func NewUnitBuilder() *UnitBuilder {
	return &UnitBuilder{
		ID:            uuid.New(),
		Name:          "Garden Studio",
		MaxGuests:     2,
		Bedrooms:      1,
		Bathrooms:     1,
		PricePerNight: 15000,
		IsAvailable:   true,
	}
}

func (u *UnitBuilder) With(mutate func(*UnitBuilder)) *UnitBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UnitBuilder) BuildDomain() (*unit.Unit, error) {
	return unit.NewUnit(u.ID, u.Name, u.MaxGuests, u.Bedrooms, u.Bathrooms, u.PricePerNight, u.IsAvailable)
}

func (u *UnitBuilder) BuildInfra() sqlc.Units {
	now := time.Now()
	return sqlc.Units{
		ID:            u.ID,
		Name:          u.Name,
		MaxGuests:     int32(u.MaxGuests), // #nosec G115 -- test data
		Bedrooms:      int32(u.Bedrooms),  // #nosec G115 -- test data
		Bathrooms:     int32(u.Bathrooms), // #nosec G115 -- test data
		PricePerNight: u.PricePerNight,
		IsAvailable:   u.IsAvailable,
		CreatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UnitBuilder) BuildView() *queries.UnitView {
	return &queries.UnitView{
		ID:            u.ID,
		Name:          u.Name,
		MaxGuests:     u.MaxGuests,
		Bedrooms:      u.Bedrooms,
		Bathrooms:     u.Bathrooms,
		PricePerNight: u.PricePerNight,
		IsAvailable:   u.IsAvailable,
	}
}

// MustBuildDomain is BuildDomain for fixtures that are known to be valid.
func (u *UnitBuilder) MustBuildDomain() *unit.Unit {
	built, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return built
}

// Fluent builder methods
func (u *UnitBuilder) WithID(id uuid.UUID) *UnitBuilder {
	u.ID = id
	return u
}

func (u *UnitBuilder) WithName(name string) *UnitBuilder {
	u.Name = name
	return u
}

func (u *UnitBuilder) WithMaxGuests(n int) *UnitBuilder {
	u.MaxGuests = n
	return u
}

func (u *UnitBuilder) WithPricePerNight(cents int64) *UnitBuilder {
	u.PricePerNight = cents
	return u
}

func (u *UnitBuilder) AsUnavailable() *UnitBuilder {
	u.IsAvailable = false
	return u
}
