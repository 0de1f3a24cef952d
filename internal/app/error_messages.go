// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings written into HTTP
// error bodies, so the wording stays the same across handlers and
// middleware.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidGzip is returned when a gzip-encoded body is corrupt.
	MsgInvalidGzip = "Invalid gzip data"

	// MsgInternalServerError hides the detail of server-side failures.
	MsgInternalServerError = "internal server error"

	// MsgInvalidInput is returned for rejected input without a more
	// specific field message.
	MsgInvalidInput = "invalid data provided"

	// MsgInvalidCredentials is returned for failed logins.
	MsgInvalidCredentials = "invalid username or password"

	// MsgForbidden is returned when a non-owner tries to answer.
	MsgForbidden = "only the board owner can answer questions"

	// MsgUsernameTaken is returned when registering an existing username.
	MsgUsernameTaken = "username already exists"

	// MsgQuestionNotFound is returned for unknown boards or question indices.
	MsgQuestionNotFound = "question was not found"

	// MsgNotFound is returned for unknown routes, unsupported methods and
	// malformed question references.
	MsgNotFound = "not found"

	// MsgRequestTimedOut is the body of requests cut off by the server's
	// request timeout.
	MsgRequestTimedOut = `{"error":"request timed out"}`
)
