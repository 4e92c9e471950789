package reservation

import (
	"time"

	"aparthotel-booking/internal/domain/unit"

	"github.com/google/uuid"
)

type Reservation struct {
	id              uuid.UUID
	unitID          uuid.UUID
	requesterID     uuid.UUID
	guest           Guest
	stay            StayRange
	guests          int
	totalPrice      Money
	status          Status
	contactMethod   ContactMethod
	specialRequests SpecialRequests
	createdAt       time.Time
	updatedAt       time.Time
}

// NewReservation builds a pending reservation. Availability is not checked here.
func NewReservation(
	unitID, requesterID uuid.UUID,
	guest Guest,
	stay StayRange,
	guests int,
	totalPrice Money,
	contactMethod ContactMethod,
	specialRequests SpecialRequests,
	now time.Time,
) (*Reservation, error) {
	if unitID == uuid.Nil {
		return nil, fieldErr("apartmentId", ErrMissingUnit)
	}
	if requesterID == uuid.Nil {
		return nil, ErrMissingRequester
	}
	if guests < 1 {
		return nil, fieldErr("guests", ErrInvalidGuestCount)
	}
	if !contactMethod.IsValid() {
		return nil, fieldErr("contactMethod", ErrUnknownContact)
	}

	return &Reservation{
		id:              uuid.New(),
		unitID:          unitID,
		requesterID:     requesterID,
		guest:           guest,
		stay:            stay,
		guests:          guests,
		totalPrice:      totalPrice,
		status:          StatusPending,
		contactMethod:   contactMethod,
		specialRequests: specialRequests,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructReservation(
	id, unitID, requesterID uuid.UUID,
	guest Guest,
	stay StayRange,
	guests int,
	totalPrice Money,
	status Status,
	contactMethod ContactMethod,
	specialRequests SpecialRequests,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		unitID:          unitID,
		requesterID:     requesterID,
		guest:           guest,
		stay:            stay,
		guests:          guests,
		totalPrice:      totalPrice,
		status:          status,
		contactMethod:   contactMethod,
		specialRequests: specialRequests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// TransitionTo moves the reservation along the status graph and refreshes updatedAt.
func (r *Reservation) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() || !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	r.updatedAt = now
	return nil
}

// CheckCapacity rejects parties larger than the apartment sleeps.
func (r *Reservation) CheckCapacity(u *unit.Unit) error {
	if !u.Sleeps(r.guests) {
		return fieldErr("guests", ErrCapacityExceeded)
	}
	return nil
}

func (r *Reservation) ID() uuid.UUID                    { return r.id }
func (r *Reservation) UnitID() uuid.UUID                { return r.unitID }
func (r *Reservation) RequesterID() uuid.UUID           { return r.requesterID }
func (r *Reservation) Guest() Guest                     { return r.guest }
func (r *Reservation) Stay() StayRange                  { return r.stay }
func (r *Reservation) Guests() int                      { return r.guests }
func (r *Reservation) TotalPrice() Money                { return r.totalPrice }
func (r *Reservation) Status() Status                   { return r.status }
func (r *Reservation) ContactMethod() ContactMethod     { return r.contactMethod }
func (r *Reservation) SpecialRequests() SpecialRequests { return r.specialRequests }
func (r *Reservation) CreatedAt() time.Time             { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time             { return r.updatedAt }
