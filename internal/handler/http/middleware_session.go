// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/internal/utils"
	"github.com/MKhiriev/go-ask-board/models"
)

// withSession resolves the session cookie into a [models.Identity] and
// stores it, together with the raw session id, in the request context.
//
// A missing, stale or forged cookie never fails the request: the visitor is
// treated as a guest. Handlers that require an owner check the identity
// themselves.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		cookie, err := r.Cookie(h.cookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, models.Guest(""))))
			return
		}

		identity := h.services.AuthService.ResolveSession(ctx, cookie.Value)
		ctx = utils.WithSessionID(ctx, cookie.Value)
		ctx = utils.WithIdentity(ctx, identity)

		if identity.IsAuthenticated() {
			l := logger.FromContext(ctx).GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("username", identity.Username)
			})
			ctx = l.WithContext(ctx)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// setSessionCookie hands the session id to the browser. The cookie is
// HttpOnly and scoped to the whole site.
func (h *Handler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie immediately (Max-Age=0).
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
