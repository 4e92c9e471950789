package converter

import (
	"aparthotel-booking/internal/domain/reservation"
	sqlc "aparthotel-booking/internal/infra/sqlc/generated"
	"aparthotel-booking/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	guest := res.Guest()
	stay := res.Stay()

	return sqlc.CreateReservationParams{
		ID:              res.ID(),
		UnitID:          res.UnitID(),
		RequesterID:     res.RequesterID(),
		GuestName:       guest.Name(),
		GuestEmail:      guest.Email(),
		GuestPhone:      pgconv.StringToPgtype(guest.Phone()),
		CheckIn:         pgconv.TimeToPgtype(stay.CheckIn()),
		CheckOut:        pgconv.TimeToPgtype(stay.CheckOut()),
		Guests:          int32(res.Guests()), // #nosec G115 -- bounded by unit capacity
		TotalPrice:      res.TotalPrice().Cents(),
		Status:          res.Status().String(),
		ContactMethod:   res.ContactMethod().String(),
		SpecialRequests: pgconv.StringToPgtype(res.SpecialRequests().String()),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// ReservationFromInfra rebuilds the entity, re-running value object validation on stored data.
func ReservationFromInfra(row sqlc.Reservations) (*reservation.Reservation, error) {
	guest, err := reservation.NewGuest(row.GuestName, row.GuestEmail, pgconv.StringFromPgtype(row.GuestPhone))
	if err != nil {
		return nil, err
	}

	stay, err := reservation.NewStayRange(pgconv.TimeFromPgtype(row.CheckIn), pgconv.TimeFromPgtype(row.CheckOut))
	if err != nil {
		return nil, err
	}

	price, err := reservation.NewMoney(row.TotalPrice)
	if err != nil {
		return nil, err
	}

	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	contact, err := reservation.ParseContactMethod(row.ContactMethod)
	if err != nil {
		return nil, err
	}

	requests, err := reservation.NewSpecialRequests(pgconv.StringFromPgtype(row.SpecialRequests))
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.UnitID,
		row.RequesterID,
		guest,
		stay,
		int(row.Guests),
		price,
		status,
		contact,
		requests,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
