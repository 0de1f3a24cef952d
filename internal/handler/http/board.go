// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ask-board/internal/app"
	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/internal/store"
	"github.com/MKhiriev/go-ask-board/internal/utils"
	"github.com/MKhiriev/go-ask-board/models"
)

func (h *Handler) readBoard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view, err := h.services.BoardService.ReadBoard(ctx, chi.URLParam(r, "owner"), utils.GetIdentityFromContext(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) submitQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body models.QuestionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	resp, err := h.services.BoardService.SubmitQuestion(ctx, models.SubmitQuestionRequest{
		Owner:    chi.URLParam(r, "owner"),
		Text:     body.Text,
		Author:   body.Author,
		Identity: identityWithGuestEmail(r, body.Email),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

// followQuestion accepts an empty body: a guest who gives no email still
// gets a successful, no-op follow.
func (h *Handler) followQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	index, ok := questionIndex(w, r)
	if !ok {
		return
	}

	var body models.FollowBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	err := h.services.BoardService.FollowQuestion(ctx, models.FollowQuestionRequest{
		Owner:    chi.URLParam(r, "owner"),
		Index:    index,
		Identity: identityWithGuestEmail(r, body.Email),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) answerQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	index, ok := questionIndex(w, r)
	if !ok {
		return
	}

	var body models.AnswerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	err := h.services.BoardService.AnswerQuestion(ctx, models.AnswerQuestionRequest{
		Owner:    chi.URLParam(r, "owner"),
		Index:    index,
		Link:     body.Link,
		Identity: utils.GetIdentityFromContext(ctx),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// questionIndex parses the {index} URL parameter. A malformed index can
// never name a question, so it is reported as not found.
func questionIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		writeServiceError(w, r, store.ErrQuestionNotFound)
		return 0, false
	}
	return index, true
}

// identityWithGuestEmail returns the session identity, filling in the email a
// guest typed into the form. Logged-in users always use their account email.
func identityWithGuestEmail(r *http.Request, email string) models.Identity {
	identity := utils.GetIdentityFromContext(r.Context())
	if !identity.IsAuthenticated() {
		identity.GuestEmail = email
	}
	return identity
}
