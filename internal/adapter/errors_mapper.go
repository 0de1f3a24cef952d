package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var mailgunStatusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrBadGateway,
	http.StatusGatewayTimeout:      ErrBadGateway,
}

// mapHTTPError turns a non-2xx Mailgun response into a sentinel error that
// carries the response body as detail.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if sentinel, ok := mailgunStatusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	if body == "" {
		body = http.StatusText(status)
	}
	return fmt.Errorf("mailgun error: %d %s", status, body)
}
