package mailer

import (
	"context"
	"log/slog"
)

// LogSender stands in for SMTP in local setups: it logs instead of sending.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	s.logger.InfoContext(ctx, "mail delivery skipped, no SMTP host configured",
		"to", to,
		"subject", subject,
		"body_bytes", len(htmlBody))
	return nil
}
