package readstore

import (
	"context"

	"aparthotel-booking/internal/domain/unit"
	"aparthotel-booking/internal/infra"
	sqlc "aparthotel-booking/internal/infra/sqlc/generated"
	"aparthotel-booking/internal/pkg/pgconv"
	"aparthotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UnitReadQueries interface {
	GetUnitByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Units, error)
	ListUnits(ctx context.Context, db sqlc.DBTX) ([]sqlc.Units, error)
	LockUnitByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Units, error)
}

type UnitReadStore struct {
	queries UnitReadQueries
	db      sqlc.DBTX
}

func NewUnitReadStore(queries UnitReadQueries, db sqlc.DBTX) *UnitReadStore {
	return &UnitReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UnitReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UnitView, error) {
	row, err := r.queries.GetUnitByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find unit by ID", err)
	}

	return toUnitView(row)
}

// LockByID must run on a transaction; the row stays locked until it ends.
func (r *UnitReadStore) LockByID(ctx context.Context, id uuid.UUID) (*unit.Unit, error) {
	row, err := r.queries.LockUnitByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock unit", err)
	}

	return toUnit(row)
}

func (r *UnitReadStore) List(ctx context.Context) ([]*queries.UnitView, error) {
	rows, err := r.queries.ListUnits(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list units", err)
	}

	result := make([]*queries.UnitView, len(rows))
	for i, row := range rows {
		view, err := toUnitView(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}

	return result, nil
}

// toUnit rehydrates the entity; a row that breaks its rules is a storage fault.
func toUnit(row sqlc.Units) (*unit.Unit, error) {
	u, err := unit.NewUnit(row.ID, row.Name, int(row.MaxGuests), int(row.Bedrooms), int(row.Bathrooms),
		row.PricePerNight, row.IsAvailable)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid unit row", err, infra.KindDBFailure)
	}
	return u, nil
}

func toUnitView(row sqlc.Units) (*queries.UnitView, error) {
	u, err := toUnit(row)
	if err != nil {
		return nil, err
	}

	return &queries.UnitView{
		ID:            u.ID(),
		Name:          u.Name(),
		MaxGuests:     u.MaxGuests(),
		Bedrooms:      u.Bedrooms(),
		Bathrooms:     u.Bathrooms(),
		PricePerNight: u.PricePerNight(),
		IsAvailable:   u.IsAvailable(),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
