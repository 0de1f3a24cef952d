// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Notification is a single email-like message handed to a notifier.
type Notification struct {
	// ID correlates the dispatch with its delivery logs.
	ID string `json:"id"`

	// To is the recipient address.
	To string `json:"to"`

	// Subject is the message subject line.
	Subject string `json:"subject"`

	// Text is the plain-text body.
	Text string `json:"text"`
}
