package response

import (
	"time"

	"aparthotel-booking/internal/pkg/errs"
	"aparthotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ApartmentResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	MaxGuests     int       `json:"maxGuests"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	PricePerNight int64     `json:"pricePerNight"`
	IsAvailable   bool      `json:"isAvailable"`
}

type AvailabilityResponse struct {
	ApartmentID uuid.UUID `json:"apartmentId"`
	CheckIn     time.Time `json:"checkIn"`
	CheckOut    time.Time `json:"checkOut"`
	Available   bool      `json:"available"`
	Degraded    bool      `json:"degraded,omitempty"`
}

func FromUnitView(v *queries.UnitView) (*ApartmentResponse, error) {
	var out ApartmentResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, errs.Wrap(err, "copy unit view")
	}
	return &out, nil
}

func FromUnitViews(views []*queries.UnitView) ([]ApartmentResponse, error) {
	out := make([]ApartmentResponse, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, errs.Wrap(err, "copy unit views")
	}
	return out, nil
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		ApartmentID: v.UnitID,
		CheckIn:     v.CheckIn,
		CheckOut:    v.CheckOut,
		Available:   v.Available,
		Degraded:    v.Degraded,
	}
}
