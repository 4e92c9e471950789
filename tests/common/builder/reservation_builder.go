//go:build unit || e2e

package builder

import (
	"time"

	"aparthotel-booking/internal/domain/reservation"
	reqdto "aparthotel-booking/internal/handler/dto/request"
	sqlc "aparthotel-booking/internal/infra/sqlc/generated"
	"aparthotel-booking/internal/usecase/commands"
	"aparthotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	UnitID          uuid.UUID
	UnitName        string
	RequesterID     uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	Guests          int
	TotalPrice      int64
	Status          string
	ContactMethod   string
	SpecialRequests string
	CreatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	checkIn := time.Date(2030, time.June, 1, 14, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		UnitID:        uuid.New(),
		UnitName:      "Garden Studio",
		RequesterID:   uuid.New(),
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, 3),
		GuestName:     "Ada Lovelace",
		GuestEmail:    "ada@example.com",
		GuestPhone:    "+44 20 7946 0958",
		Guests:        2,
		TotalPrice:    45000,
		Status:        "pending",
		ContactMethod: "email",
		CreatedAt:     time.Date(2030, time.May, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		UnitID:          r.UnitID,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		Guests:          r.Guests,
		TotalPrice:      r.TotalPrice,
		ContactMethod:   r.ContactMethod,
		SpecialRequests: r.SpecialRequests,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	total := r.TotalPrice
	return reqdto.CreateBookingRequest{
		ApartmentID:     r.UnitID,
		CheckIn:         reqdto.DateTime{Time: r.CheckIn},
		CheckOut:        reqdto.DateTime{Time: r.CheckOut},
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		Guests:          r.Guests,
		TotalPrice:      &total,
		ContactMethod:   r.ContactMethod,
		SpecialRequests: r.SpecialRequests,
	}
}

// BuildDomain reconstructs a stored reservation in the builder's status.
func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	guest, err := reservation.NewGuest(r.GuestName, r.GuestEmail, r.GuestPhone)
	if err != nil {
		return nil, err
	}
	stay, err := reservation.NewStayRange(r.CheckIn, r.CheckOut)
	if err != nil {
		return nil, err
	}
	price, err := reservation.NewMoney(r.TotalPrice)
	if err != nil {
		return nil, err
	}
	status, err := reservation.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	contact, err := reservation.ParseContactMethod(r.ContactMethod)
	if err != nil {
		return nil, err
	}
	requests, err := reservation.NewSpecialRequests(r.SpecialRequests)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		uuid.New(), r.UnitID, r.RequesterID,
		guest, stay, r.Guests, price, status, contact, requests,
		r.CreatedAt, r.CreatedAt,
	), nil
}

func (r *ReservationBuilder) BuildInfra() sqlc.Reservations {
	row := sqlc.Reservations{
		ID:            uuid.New(),
		UnitID:        r.UnitID,
		RequesterID:   r.RequesterID,
		GuestName:     r.GuestName,
		GuestEmail:    r.GuestEmail,
		CheckIn:       pgtype.Timestamptz{Time: r.CheckIn, Valid: true},
		CheckOut:      pgtype.Timestamptz{Time: r.CheckOut, Valid: true},
		Guests:        int32(r.Guests), // #nosec G115 -- test data
		TotalPrice:    r.TotalPrice,
		Status:        r.Status,
		ContactMethod: r.ContactMethod,
		CreatedAt:     pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
	if r.GuestPhone != "" {
		row.GuestPhone = pgtype.Text{String: r.GuestPhone, Valid: true}
	}
	if r.SpecialRequests != "" {
		row.SpecialRequests = pgtype.Text{String: r.SpecialRequests, Valid: true}
	}
	return row
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	view := &queries.ReservationView{
		ID:            uuid.New(),
		UnitID:        r.UnitID,
		UnitName:      r.UnitName,
		RequesterID:   r.RequesterID,
		GuestName:     r.GuestName,
		GuestEmail:    r.GuestEmail,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		Nights:        int(r.CheckOut.Sub(r.CheckIn).Hours() / 24),
		Guests:        r.Guests,
		TotalPrice:    r.TotalPrice,
		Status:        r.Status,
		ContactMethod: r.ContactMethod,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.CreatedAt,
	}
	if r.GuestPhone != "" {
		phone := r.GuestPhone
		view.GuestPhone = &phone
	}
	if r.SpecialRequests != "" {
		requests := r.SpecialRequests
		view.SpecialRequests = &requests
	}
	return view
}

// Fluent builder methods
func (r *ReservationBuilder) WithUnitID(id uuid.UUID) *ReservationBuilder {
	r.UnitID = id
	return r
}

func (r *ReservationBuilder) WithRequesterID(id uuid.UUID) *ReservationBuilder {
	r.RequesterID = id
	return r
}

func (r *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	r.CheckIn = checkIn
	r.CheckOut = checkOut
	return r
}

func (r *ReservationBuilder) WithGuests(n int) *ReservationBuilder {
	r.Guests = n
	return r
}

func (r *ReservationBuilder) WithTotalPrice(cents int64) *ReservationBuilder {
	r.TotalPrice = cents
	return r
}

func (r *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) WithContactMethod(method string) *ReservationBuilder {
	r.ContactMethod = method
	return r
}

func (r *ReservationBuilder) WithGuestEmail(email string) *ReservationBuilder {
	r.GuestEmail = email
	return r
}

func (r *ReservationBuilder) WithoutPhone() *ReservationBuilder {
	r.GuestPhone = ""
	return r
}

func (r *ReservationBuilder) WithSpecialRequests(requests string) *ReservationBuilder {
	r.SpecialRequests = requests
	return r
}
