package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-ask-board/internal/config"
	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/internal/utils"
	"github.com/MKhiriev/go-ask-board/models"
)

type mailgunNotifier struct {
	client *utils.HTTPClient
	domain string
	from   string

	logger *logger.Logger
}

// NewMailgunNotifier constructs a [Notifier] that posts messages to the
// Mailgun v3 API of cfg.MailgunDomain, authenticated as "api" with
// cfg.MailgunAPIKey. Messages are sent from noreply@{domain}.
func NewMailgunNotifier(cfg config.Adapter, logger *logger.Logger) (Notifier, error) {
	baseURL, err := normalizeBaseURL(cfg.MailgunBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mailgun base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetBasicAuth("api", cfg.MailgunAPIKey)

	return &mailgunNotifier{
		client: client,
		domain: cfg.MailgunDomain,
		from:   "noreply@" + cfg.MailgunDomain,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Send implements [Notifier]. It posts a form-encoded message to
// /v3/{domain}/messages and maps non-2xx responses through mapHTTPError.
func (m *mailgunNotifier) Send(ctx context.Context, notification models.Notification) error {
	if strings.TrimSpace(notification.To) == "" {
		return ErrEmptyRecipient
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"from":    m.from,
			"to":      notification.To,
			"subject": notification.Subject,
			"text":    notification.Text,
		}).
		SetPathParam("domain", m.domain).
		Post("/v3/{domain}/messages")
	if err != nil {
		return fmt.Errorf("mailgun request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*mailgunNotifier.Send").
		Str("notification_id", notification.ID).
		Msg("email accepted by mailgun")

	return nil
}
