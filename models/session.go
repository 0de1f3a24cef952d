package models

import "time"

// Session is an ephemeral mapping from an opaque token to a username.
// Sessions live only in process memory.
type Session struct {
	// ID is the unguessable session token handed to the client.
	ID string `json:"session_id"`

	// Username is the authenticated account the session belongs to.
	Username string `json:"username"`

	// CreatedAt is the moment the session was issued.
	CreatedAt time.Time `json:"created_at"`
}
