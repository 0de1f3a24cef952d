package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ask-board/internal/app"
	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/internal/service"
	"github.com/MKhiriev/go-ask-board/internal/store"
	"github.com/MKhiriev/go-ask-board/internal/utils"
	"github.com/MKhiriev/go-ask-board/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrForbidden:           http.StatusForbidden,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrQuestionNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrWritingSnapshot:      http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials:  app.MsgInvalidCredentials,
	service.ErrForbidden:           app.MsgForbidden,
	store.ErrUsernameAlreadyExists: app.MsgUsernameTaken,
	store.ErrQuestionNotFound:      app.MsgQuestionNotFound,
}

// validationMessages are the field errors whose text is safe to show the
// client as is.
var validationMessages = []error{
	validators.ErrEmptyUsername,
	validators.ErrEmptyPassword,
	validators.ErrEmptyEmail,
	validators.ErrEmptyOwner,
	validators.ErrEmptyQuestion,
	validators.ErrQuestionTooLong,
	validators.ErrEmptyAnswerLink,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing text for a 4xx error. Wrapping
// context added by lower layers is never exposed.
func messageFromError(err error, status int) string {
	if status == http.StatusBadRequest {
		for _, target := range validationMessages {
			if errors.Is(err, target) {
				return target.Error()
			}
		}
		return app.MsgInvalidInput
	}

	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(status)
}

// writeServiceError logs err and writes it as an [utils.ErrorResponse].
// Server-side failures are reported without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		utils.WriteError(w, app.MsgInternalServerError, status)
		return
	}

	log.Info().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, messageFromError(err, status), status)
}
