package adapter

import (
	"context"

	"github.com/MKhiriev/go-ask-board/internal/config"
	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/models"
)

// logNotifier is used when Mailgun is not configured. It records the
// notification it would have sent and reports [ErrNotifierNotConfigured].
type logNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(logger *logger.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (l *logNotifier) Send(ctx context.Context, notification models.Notification) error {
	l.logger.Info().
		Str("notification_id", notification.ID).
		Str("to", notification.To).
		Str("subject", notification.Subject).
		Msg("mailgun credentials not set; skipping email")
	return ErrNotifierNotConfigured
}

// NewNotifier returns the Mailgun notifier when both the API key and the
// domain are configured, and the log-only notifier otherwise.
func NewNotifier(cfg config.Adapter, logger *logger.Logger) (Notifier, error) {
	if cfg.MailgunAPIKey == "" || cfg.MailgunDomain == "" {
		logger.Warn().Msg("mailgun credentials not set; notifications will only be logged")
		return NewLogNotifier(logger), nil
	}

	return NewMailgunNotifier(cfg, logger)
}
