package queries

import (
	"context"
	"log/slog"

	"aparthotel-booking/internal/infra"
	"aparthotel-booking/internal/pkg/errs"
	"aparthotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUnitNotFound = errs.New("apartment not found")
)

//go:generate mockgen -source=unit.go -destination=../../../tests/mock/queries/unit_mock.go -package=queries

type UnitQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*UnitView, error)
	List(ctx context.Context) ([]*UnitView, error)
}

type UnitReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UnitView, error)
	List(ctx context.Context) ([]*UnitView, error)
}

type unitQueriesImpl struct {
	readStore UnitReadStore
}

func NewUnitQueries(readStore UnitReadStore) UnitQueries {
	return &unitQueriesImpl{
		readStore: readStore,
	}
}

func (q *unitQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*UnitView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, errs.Mark(err, shared.ErrStorageUnavailable)
	}
	return view, nil
}

// List never fails on storage errors; the catalog page renders empty instead.
func (q *unitQueriesImpl) List(ctx context.Context) ([]*UnitView, error) {
	views, err := q.readStore.List(ctx)
	if err != nil {
		slog.WarnContext(ctx, "unit listing degraded to empty result", "error", err.Error())
		return []*UnitView{}, nil
	}
	return views, nil
}
