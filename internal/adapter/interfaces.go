// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter delivers notifications to the outside world.
//
// The primary abstraction is [Notifier]. [NewNotifier] returns the Mailgun
// HTTP implementation when an API key and a domain are configured, and a
// log-only implementation otherwise. Mailgun status codes are mapped to the
// sentinel errors in errors.go by mapHTTPError, so callers can use
// [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ask-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier sends a single plain-text email. Implementations make one attempt
// and never retry.
type Notifier interface {
	Send(ctx context.Context, notification models.Notification) error
}
