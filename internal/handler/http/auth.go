package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-ask-board/internal/app"
	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/internal/utils"
	"github.com/MKhiriev/go-ask-board/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials.User())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Username:  registeredUser.Username,
		Email:     registeredUser.Email,
		CreatedAt: registeredUser.CreatedAt,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Login(ctx, credentials.User())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.setSessionCookie(w, session.ID)
	utils.WriteJSON(w, models.LoginResponse{
		SessionID: session.ID,
		Username:  session.Username,
	}, http.StatusOK)
}

// logout is idempotent: it succeeds and clears the cookie even when the
// request carried no session.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if sessionID, ok := utils.GetSessionIDFromContext(ctx); ok {
		h.services.AuthService.Logout(ctx, sessionID)
		logger.FromRequest(r).Info().Msg("user logged out")
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity := utils.GetIdentityFromContext(r.Context())

	utils.WriteJSON(w, models.WhoAmIResponse{
		Username:      identity.Username,
		Authenticated: identity.IsAuthenticated(),
	}, http.StatusOK)
}
