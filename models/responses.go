package models

import "time"

// RegisterResponse describes the freshly created account.
type RegisterResponse struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse carries the issued session token. The same token is set as
// an HttpOnly cookie.
type LoginResponse struct {
	SessionID string `json:"session_id"`
	Username  string `json:"username"`
}

// WhoAmIResponse describes the identity the request was resolved to.
type WhoAmIResponse struct {
	Username      string `json:"username,omitempty"`
	Authenticated bool   `json:"authenticated"`
}
