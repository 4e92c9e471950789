package mailer

import (
	"context"
	"log/slog"

	"aparthotel-booking/internal/pkg/config"
	"aparthotel-booking/internal/pkg/errs"

	"github.com/sony/gobreaker"
	"gopkg.in/gomail.v2"
)

var ErrMailerUnavailable = errs.New("mailer unavailable")

// Dialer is the part of gomail.Dialer the sender uses.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender delivers mail through gomail behind a circuit breaker.
// While the breaker is open Send fails fast with ErrMailerUnavailable.
type SMTPSender struct {
	from    string
	dialer  Dialer
	breaker *gobreaker.CircuitBreaker
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return newSMTPSender(cfg, dialer)
}

func newSMTPSender(cfg config.MailConfig, dialer Dialer) *SMTPSender {
	trips := cfg.BreakerTrips
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "smtp",
		MaxRequests: cfg.BreakerMaxReq,
		Interval:    cfg.BreakerWindow,
		Timeout:     cfg.BreakerOpen,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= trips
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String())
		},
	})

	return &SMTPSender{
		from:    cfg.From,
		dialer:  dialer,
		breaker: breaker,
	}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "send mail")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.dialer.DialAndSend(m)
	})
	if err != nil {
		if errs.Is(err, gobreaker.ErrOpenState) || errs.Is(err, gobreaker.ErrTooManyRequests) {
			return errs.Mark(err, ErrMailerUnavailable)
		}
		return errs.Wrap(err, "smtp delivery failed")
	}

	return nil
}

func (s *SMTPSender) State() gobreaker.State {
	return s.breaker.State()
}
