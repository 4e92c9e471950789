package request

import (
	"strings"

	"aparthotel-booking/internal/usecase/commands"
	"aparthotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ApartmentID     uuid.UUID `json:"apartmentId" binding:"required"`
	CheckIn         DateTime  `json:"checkIn" binding:"required" swaggertype:"string" example:"2030-06-01T14:00:00Z"`
	CheckOut        DateTime  `json:"checkOut" binding:"required" swaggertype:"string" example:"2030-06-04"`
	GuestName       string    `json:"guestName" binding:"required,max=255"`
	GuestEmail      string    `json:"guestEmail" binding:"required,email"`
	GuestPhone      string    `json:"guestPhone,omitempty" binding:"omitempty,max=32"`
	Guests          int       `json:"guests" binding:"required,min=1"`
	TotalPrice      *int64    `json:"totalPrice" binding:"required,min=0"`
	ContactMethod   string    `json:"contactMethod" binding:"required,contactmethod"`
	SpecialRequests string    `json:"specialRequests,omitempty" binding:"max=2000"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateReservationInput {
	var total int64
	if r.TotalPrice != nil {
		total = *r.TotalPrice
	}
	return commands.CreateReservationInput{
		UnitID:          r.ApartmentID,
		CheckIn:         r.CheckIn.Time,
		CheckOut:        r.CheckOut.Time,
		GuestName:       r.GuestName,
		GuestEmail:      strings.TrimSpace(r.GuestEmail),
		GuestPhone:      r.GuestPhone,
		Guests:          r.Guests,
		TotalPrice:      total,
		ContactMethod:   r.ContactMethod,
		SpecialRequests: r.SpecialRequests,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,bookingstatus"`
}

type ListBookingsQuery struct {
	Status string `form:"status" binding:"omitempty,bookingstatus"`
	UnitID string `form:"unitId" binding:"omitempty,uuid"`
}

func (q *ListBookingsQuery) ToFilter() queries.ReservationFilter {
	var filter queries.ReservationFilter
	if q.Status != "" {
		status := q.Status
		filter.Status = &status
	}
	if q.UnitID != "" {
		if id, err := uuid.Parse(q.UnitID); err == nil {
			filter.UnitID = &id
		}
	}
	return filter
}
