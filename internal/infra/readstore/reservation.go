package readstore

import (
	"context"
	"time"

	"aparthotel-booking/internal/domain/reservation"
	"aparthotel-booking/internal/infra"
	sqlc "aparthotel-booking/internal/infra/sqlc/generated"
	"aparthotel-booking/internal/pkg/pgconv"
	"aparthotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsParams) ([]sqlc.ListReservationsRow, error)
	ListReservationsByRequester(ctx context.Context, db sqlc.DBTX, requesterID uuid.UUID) ([]sqlc.ListReservationsByRequesterRow, error)
	CountOverlappingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingReservationsParams) (int64, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row), nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationsParams{
		Status: pgconv.StringPtrToPgtype(filter.Status),
		UnitID: pgconv.UUIDPtrToPgtype(filter.UnitID),
	}

	rows, err := r.queries.ListReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationView(sqlc.GetReservationByIDRow(row))
	}

	return result, nil
}

func (r *ReservationReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByRequester(ctx, r.db, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by requester", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = rowToReservationView(sqlc.GetReservationByIDRow(row))
	}

	return result, nil
}

// CountOverlapping counts non-cancelled reservations intersecting [checkIn, checkOut).
func (r *ReservationReadStore) CountOverlapping(ctx context.Context, unitID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	params := sqlc.CountOverlappingReservationsParams{
		UnitID:   unitID,
		CheckIn:  pgconv.TimeToPgtype(checkIn),
		CheckOut: pgconv.TimeToPgtype(checkOut),
	}

	count, err := r.queries.CountOverlappingReservations(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping reservations", err)
	}

	return count, nil
}

func rowToReservationView(row sqlc.GetReservationByIDRow) *queries.ReservationView {
	checkIn := pgconv.TimeFromPgtype(row.CheckIn)
	checkOut := pgconv.TimeFromPgtype(row.CheckOut)

	return &queries.ReservationView{
		ID:              row.ID,
		UnitID:          row.UnitID,
		UnitName:        row.UnitName,
		RequesterID:     row.RequesterID,
		GuestName:       row.GuestName,
		GuestEmail:      row.GuestEmail,
		GuestPhone:      pgconv.StringPtrFromPgtype(row.GuestPhone),
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Nights:          nights(checkIn, checkOut),
		Guests:          int(row.Guests),
		TotalPrice:      row.TotalPrice,
		Status:          row.Status,
		ContactMethod:   row.ContactMethod,
		SpecialRequests: pgconv.StringPtrFromPgtype(row.SpecialRequests),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func nights(checkIn, checkOut time.Time) int {
	stay, err := reservation.NewStayRange(checkIn, checkOut)
	if err != nil {
		return 0
	}
	return stay.Nights()
}
