package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"

	"aparthotel-booking/internal/domain/reservation"
	"aparthotel-booking/internal/pkg/errs"
)

//go:generate mockgen -source=dispatcher.go -destination=../../../tests/mock/notification/dispatcher_mock.go -package=notification

// EmailSender is the outbound mail transport.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type Dispatcher interface {
	// Dispatch never returns an error; failures are reported per channel.
	Dispatch(ctx context.Context, msg Message) Report
}

type Settings struct {
	OperatorEmail string
	PropertyName  string
}

type dispatcherImpl struct {
	sender   EmailSender
	settings Settings
}

func NewDispatcher(sender EmailSender, settings Settings) Dispatcher {
	return &dispatcherImpl{
		sender:   sender,
		settings: settings,
	}
}

func (d *dispatcherImpl) Dispatch(ctx context.Context, msg Message) Report {
	email := d.sendOperatorEmail(ctx, msg)
	contact := d.contactChannel(ctx, msg)

	return Report{
		Delivered: email.Outcome == OutcomeSent,
		Channels:  []ChannelResult{email, contact},
	}
}

func (d *dispatcherImpl) sendOperatorEmail(ctx context.Context, msg Message) ChannelResult {
	result := ChannelResult{Channel: ChannelEmail}

	body, err := renderOperatorEmail(d.settings.PropertyName, msg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render booking email",
			"reservation_id", msg.ReservationID,
			"error", err.Error())
		result.Outcome = OutcomeFailed
		result.Error = err.Error()
		return result
	}

	subject := fmt.Sprintf("New booking request: %s (%s - %s)",
		msg.UnitName, msg.CheckIn.Format(dateLayout), msg.CheckOut.Format(dateLayout))

	if err := d.sender.Send(ctx, d.settings.OperatorEmail, subject, body); err != nil {
		slog.WarnContext(ctx, "operator email not delivered",
			"reservation_id", msg.ReservationID,
			"error", err.Error())
		result.Outcome = OutcomeFailed
		result.Error = err.Error()
		return result
	}

	result.Outcome = OutcomeSent
	return result
}

func (d *dispatcherImpl) contactChannel(ctx context.Context, msg Message) ChannelResult {
	switch msg.ContactMethod {
	case reservation.ContactWhatsApp:
		digits := reservation.PhoneDigits(msg.GuestPhone)
		if digits == "" {
			return ChannelResult{Channel: ChannelWhatsApp, Outcome: OutcomeNotApplicable}
		}
		return ChannelResult{
			Channel: ChannelWhatsApp,
			Outcome: OutcomeSent,
			Link:    whatsAppLink(digits, d.whatsAppText(msg)),
		}
	case reservation.ContactTelegram:
		slog.InfoContext(ctx, "telegram notification requested but not implemented",
			"reservation_id", msg.ReservationID)
		return ChannelResult{Channel: ChannelTelegram, Outcome: OutcomeNotImplemented}
	case reservation.ContactPhone:
		slog.InfoContext(ctx, "phone callback requested but not implemented",
			"reservation_id", msg.ReservationID,
			"guest_phone", msg.GuestPhone)
		return ChannelResult{Channel: ChannelPhone, Outcome: OutcomeNotImplemented}
	default:
		// The operator email already covers the email contact method.
		return ChannelResult{Channel: ChannelEmail, Outcome: OutcomeNotApplicable}
	}
}

func (d *dispatcherImpl) whatsAppText(msg Message) string {
	return fmt.Sprintf("Hello %s, this is %s about your booking of %s from %s to %s (%d nights, %d guests).",
		msg.GuestName,
		d.settings.PropertyName,
		msg.UnitName,
		msg.CheckIn.Format(dateLayout),
		msg.CheckOut.Format(dateLayout),
		msg.Nights,
		msg.Guests,
	)
}

func whatsAppLink(digits, text string) string {
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(text)
}

const dateLayout = "2006-01-02"

var operatorEmailTemplate = template.Must(template.New("operator_email").Funcs(template.FuncMap{
	"date":  func(m Message) string { return m.CheckIn.Format(dateLayout) + " to " + m.CheckOut.Format(dateLayout) },
	"price": formatCents,
}).Parse(`<h2>New booking request at {{.Property}}</h2>
<table>
  <tr><td>Guest</td><td>{{.Msg.GuestName}}</td></tr>
  <tr><td>Email</td><td>{{.Msg.GuestEmail}}</td></tr>
  {{if .Msg.GuestPhone}}<tr><td>Phone</td><td>{{.Msg.GuestPhone}}</td></tr>{{end}}
  <tr><td>Apartment</td><td>{{.Msg.UnitName}}</td></tr>
  <tr><td>Dates</td><td>{{date .Msg}}</td></tr>
  <tr><td>Nights</td><td>{{.Msg.Nights}}</td></tr>
  <tr><td>Guests</td><td>{{.Msg.Guests}}</td></tr>
  <tr><td>Total</td><td>{{price .Msg.TotalPrice}}</td></tr>
  <tr><td>Preferred contact</td><td>{{.Msg.ContactMethod}}</td></tr>
</table>
{{if .Msg.SpecialRequests}}<h3>Special requests</h3>
<p>{{.Msg.SpecialRequests}}</p>{{end}}
<p>Reservation {{.Msg.ReservationID}}</p>
`))

func renderOperatorEmail(property string, msg Message) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Property string
		Msg      Message
	}{Property: property, Msg: msg}

	if err := operatorEmailTemplate.Execute(&buf, data); err != nil {
		return "", errs.Wrap(err, "render operator email")
	}
	return buf.String(), nil
}

func formatCents(cents int64) string {
	m, err := reservation.NewMoney(cents)
	if err != nil {
		return fmt.Sprintf("%d", cents)
	}
	return m.String()
}
