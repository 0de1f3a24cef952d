// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a board owner account used for authentication and for
// routing notifications about the owner's board.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique, case-sensitive account identifier. It is also
	// the key of the user's board.
	Username string `json:"username"`

	// Password is the plain-text password as received from the transport.
	// It is only populated on registration/login requests and is never
	// persisted.
	Password string `json:"password,omitempty"`

	// Email is the trimmed address that receives notifications about new
	// questions on the user's board.
	Email string `json:"email"`

	// PasswordSalt is the random per-user salt (hex-encoded).
	PasswordSalt string `json:"-"`

	// PasswordHash is the KDF output derived from Password and PasswordSalt
	// (hex-encoded).
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created. It is zero for
	// accounts loaded from stores that do not track it.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
