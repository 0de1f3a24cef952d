package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-ask-board/internal/app"
	"github.com/MKhiriev/go-ask-board/internal/service"
	"github.com/MKhiriev/go-ask-board/internal/store"
	"github.com/MKhiriev/go-ask-board/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrQuestionTooLong), http.StatusBadRequest},
		{"duplicate username", fmt.Errorf("wrapped: %w", store.ErrUsernameAlreadyExists), http.StatusConflict},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not found", fmt.Errorf("answer failed: %w", store.ErrQuestionNotFound), http.StatusNotFound},
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{"sql failure", fmt.Errorf("%w: timeout", store.ErrExecutingQuery), http.StatusInternalServerError},
		{"unknown", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"field detail", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrQuestionTooLong), validators.ErrQuestionTooLong.Error()},
		{"bare validation", service.ErrInvalidDataProvided, app.MsgInvalidInput},
		{"duplicate username", fmt.Errorf("user creation ended with error: %w", store.ErrUsernameAlreadyExists), app.MsgUsernameTaken},
		{"invalid credentials", fmt.Errorf("login: %w", service.ErrInvalidCredentials), app.MsgInvalidCredentials},
		{"not found", fmt.Errorf("answer failed: %w", store.ErrQuestionNotFound), app.MsgQuestionNotFound},
		{"forbidden", fmt.Errorf("answer: %w", service.ErrForbidden), app.MsgForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageFromError(tt.err, statusFromError(tt.err)))
		})
	}
}

func TestWriteServiceError_HidesWrappingContext(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", nil)

	writeServiceError(rec, req, fmt.Errorf("user creation ended with error: %w", store.ErrUsernameAlreadyExists))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"username already exists"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "user creation")
}
