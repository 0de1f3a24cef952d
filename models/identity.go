// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Identity describes who issued a board command.
//
// A zero Identity is a guest visitor without an email. Username is set only
// when the request carried a valid session; GuestEmail is whatever address a
// guest typed into the form and is ignored for authenticated identities.
type Identity struct {
	Username   string
	GuestEmail string
}

// Guest returns an unauthenticated identity with an optional email.
func Guest(email string) Identity {
	return Identity{GuestEmail: email}
}

// Authenticated returns an identity resolved from a session.
func Authenticated(username string) Identity {
	return Identity{Username: username}
}

// IsAuthenticated reports whether the identity was resolved from a session.
func (i Identity) IsAuthenticated() bool {
	return i.Username != ""
}

// Is reports whether the identity is the authenticated account username.
func (i Identity) Is(username string) bool {
	return i.IsAuthenticated() && i.Username == username
}

// NormalizeEmail trims and lower-cases an email address so that the same
// address typed twice is recognised as one follower.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
