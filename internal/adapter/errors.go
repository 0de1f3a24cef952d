package adapter

import "errors"

var (
	// ErrNotifierNotConfigured is returned by the log-only notifier used when
	// Mailgun credentials are absent.
	ErrNotifierNotConfigured = errors.New("mailgun credentials not set; skipping email")

	ErrEmptyRecipient = errors.New("notification has no recipient")

	ErrBadRequest          = errors.New("mailgun rejected the request")
	ErrUnauthorized        = errors.New("mailgun credentials rejected")
	ErrForbidden           = errors.New("mailgun forbade the request")
	ErrNotFound            = errors.New("mailgun domain not found")
	ErrTooManyRequests     = errors.New("mailgun rate limit exceeded")
	ErrInternalServerError = errors.New("mailgun internal error")
	ErrBadGateway          = errors.New("mailgun unavailable")
)
