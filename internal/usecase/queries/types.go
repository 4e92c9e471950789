package queries

import (
	"time"

	"github.com/google/uuid"
)

// UnitView represents read-optimized apartment data
type UnitView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	MaxGuests     int       `json:"max_guests"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	PricePerNight int64     `json:"price_per_night"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ReservationView represents a reservation joined with its unit name
type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	UnitID          uuid.UUID `json:"unit_id"`
	UnitName        string    `json:"unit_name"`
	RequesterID     uuid.UUID `json:"requester_id"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      *string   `json:"guest_phone,omitempty"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Nights          int       `json:"nights"`
	Guests          int       `json:"guests"`
	TotalPrice      int64     `json:"total_price"`
	Status          string    `json:"status"`
	ContactMethod   string    `json:"contact_method"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ReservationFilter narrows the operator listing. Nil fields do not filter.
type ReservationFilter struct {
	Status *string
	UnitID *uuid.UUID
}

// AvailabilityView is the answer of the availability oracle.
// Degraded is set when the store could not be consulted; Available is then false.
type AvailabilityView struct {
	UnitID    uuid.UUID `json:"unit_id"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Available bool      `json:"available"`
	Degraded  bool      `json:"degraded"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
