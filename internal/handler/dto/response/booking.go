package response

import (
	"time"

	"aparthotel-booking/internal/pkg/errs"
	"aparthotel-booking/internal/usecase/notification"
	"aparthotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	UnitID          uuid.UUID `json:"apartmentId"`
	UnitName        string    `json:"apartmentName"`
	RequesterID     uuid.UUID `json:"requesterId"`
	GuestName       string    `json:"guestName"`
	GuestEmail      string    `json:"guestEmail"`
	GuestPhone      *string   `json:"guestPhone,omitempty"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Nights          int       `json:"nights"`
	Guests          int       `json:"guests"`
	TotalPrice      int64     `json:"totalPrice"`
	Status          string    `json:"status"`
	ContactMethod   string    `json:"contactMethod"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ChannelResponse struct {
	Channel string `json:"channel"`
	Outcome string `json:"outcome"`
}

type NotificationResponse struct {
	Delivered bool              `json:"delivered"`
	Channels  []ChannelResponse `json:"channels"`
}

type CreateBookingResponse struct {
	ID           uuid.UUID            `json:"id"`
	Booking      *BookingResponse     `json:"booking"`
	Notification NotificationResponse `json:"notification"`
}

func FromReservationView(v *queries.ReservationView) (*BookingResponse, error) {
	var out BookingResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, errs.Wrap(err, "copy reservation view")
	}
	return &out, nil
}

func FromReservationViews(views []*queries.ReservationView) ([]BookingResponse, error) {
	out := make([]BookingResponse, 0, len(views))
	if err := copier.Copy(&out, views); err != nil {
		return nil, errs.Wrap(err, "copy reservation views")
	}
	return out, nil
}

// Links and channel errors are for the operator and stay out of the guest response.
func FromNotificationReport(r notification.Report) NotificationResponse {
	out := NotificationResponse{
		Delivered: r.Delivered,
		Channels:  make([]ChannelResponse, 0, len(r.Channels)),
	}
	for _, ch := range r.Channels {
		out.Channels = append(out.Channels, ChannelResponse{
			Channel: string(ch.Channel),
			Outcome: string(ch.Outcome),
		})
	}
	return out
}
