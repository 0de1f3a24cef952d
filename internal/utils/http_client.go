package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every outbound request.
const UserAgent = "go-ask-board"

// HTTPClient embeds *resty.Client so callers use the full resty API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// Retries are disabled: notifications are delivered at most once.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}
