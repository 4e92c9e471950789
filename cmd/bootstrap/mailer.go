package bootstrap

import (
	"log/slog"

	"aparthotel-booking/internal/infra/mailer"
	"aparthotel-booking/internal/pkg/config"
	"aparthotel-booking/internal/usecase/notification"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewEmailSender,
		NewDispatcherSettings,
		notification.NewDispatcher,
	),
)

// NewEmailSender falls back to logging when no SMTP host is configured.
func NewEmailSender(cfg config.Config, logger *slog.Logger) notification.EmailSender {
	if cfg.Mail.Host == "" {
		logger.Warn("SMTP_HOST not set, booking notifications will only be logged")
		return mailer.NewLogSender(logger)
	}
	return mailer.NewSMTPSender(cfg.Mail)
}

func NewDispatcherSettings(cfg config.Config) notification.Settings {
	return notification.Settings{
		OperatorEmail: cfg.Mail.OperatorEmail,
		PropertyName:  cfg.Booking.PropertyName,
	}
}
