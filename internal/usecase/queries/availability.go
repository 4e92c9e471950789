package queries

import (
	"context"
	"log/slog"
	"time"

	"aparthotel-booking/internal/domain/reservation"
	"aparthotel-booking/internal/pkg/errs"
	"aparthotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queries

// AvailabilityQueries answers whether a unit is free for a half-open stay.
// The unit itself is not looked up: an unknown unit has no reservations and is available.
type AvailabilityQueries interface {
	Check(ctx context.Context, unitID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityView, error)
	IsAvailable(ctx context.Context, unitID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
}

type OverlapCounter interface {
	CountOverlapping(ctx context.Context, unitID uuid.UUID, checkIn, checkOut time.Time) (int64, error)
}

type availabilityQueriesImpl struct {
	counter OverlapCounter
}

func NewAvailabilityQueries(counter OverlapCounter) AvailabilityQueries {
	return &availabilityQueriesImpl{
		counter: counter,
	}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, unitID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityView, error) {
	stay, err := reservation.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	view := &AvailabilityView{
		UnitID:   unitID,
		CheckIn:  stay.CheckIn(),
		CheckOut: stay.CheckOut(),
	}

	count, err := q.counter.CountOverlapping(ctx, unitID, stay.CheckIn(), stay.CheckOut())
	if err != nil {
		slog.WarnContext(ctx, "availability check degraded",
			"unit_id", unitID,
			"check_in", stay.CheckIn(),
			"check_out", stay.CheckOut(),
			"error", err.Error())
		view.Degraded = true
		return view, nil
	}

	view.Available = count == 0
	return view, nil
}

func (q *availabilityQueriesImpl) IsAvailable(ctx context.Context, unitID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	view, err := q.Check(ctx, unitID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return view.Available, nil
}
