package notification

import (
	"time"

	"aparthotel-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

// Message is everything the operator needs to act on a new booking.
type Message struct {
	ReservationID   uuid.UUID                 `json:"reservation_id"`
	UnitName        string                    `json:"unit_name"`
	GuestName       string                    `json:"guest_name"`
	GuestEmail      string                    `json:"guest_email"`
	GuestPhone      string                    `json:"guest_phone,omitempty"`
	CheckIn         time.Time                 `json:"check_in"`
	CheckOut        time.Time                 `json:"check_out"`
	Nights          int                       `json:"nights"`
	Guests          int                       `json:"guests"`
	TotalPrice      int64                     `json:"total_price"`
	ContactMethod   reservation.ContactMethod `json:"contact_method"`
	SpecialRequests string                    `json:"special_requests,omitempty"`
}

func NewMessage(res *reservation.Reservation, unitName string) Message {
	guest := res.Guest()
	stay := res.Stay()

	return Message{
		ReservationID:   res.ID(),
		UnitName:        unitName,
		GuestName:       guest.Name(),
		GuestEmail:      guest.Email(),
		GuestPhone:      guest.Phone(),
		CheckIn:         stay.CheckIn(),
		CheckOut:        stay.CheckOut(),
		Nights:          stay.Nights(),
		Guests:          res.Guests(),
		TotalPrice:      res.TotalPrice().Cents(),
		ContactMethod:   res.ContactMethod(),
		SpecialRequests: res.SpecialRequests().String(),
	}
}

type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelTelegram Channel = "telegram"
	ChannelPhone    Channel = "phone"
)

type Outcome string

const (
	OutcomeSent           Outcome = "sent"
	OutcomeFailed         Outcome = "failed"
	OutcomeNotApplicable  Outcome = "not_applicable"
	OutcomeNotImplemented Outcome = "not_implemented"
)

type ChannelResult struct {
	Channel Channel `json:"channel"`
	Outcome Outcome `json:"outcome"`
	// Link is a pre-filled deep link for the operator to open by hand.
	Link  string `json:"link,omitempty"`
	Error string `json:"error,omitempty"`
}

// Report summarizes one dispatch. Delivered mirrors the operator email outcome.
type Report struct {
	Delivered bool            `json:"delivered"`
	Channels  []ChannelResult `json:"channels"`
}

func (r Report) Channel(ch Channel) (ChannelResult, bool) {
	for _, c := range r.Channels {
		if c.Channel == ch {
			return c, true
		}
	}
	return ChannelResult{}, false
}

// FailureReason returns the first channel error, or nil when nothing failed.
func (r Report) FailureReason() *string {
	for _, c := range r.Channels {
		if c.Outcome == OutcomeFailed && c.Error != "" {
			reason := c.Error
			return &reason
		}
	}
	return nil
}
