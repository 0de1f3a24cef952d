// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ask-board/internal/app"
	"github.com/MKhiriev/go-ask-board/internal/utils"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches a route but the method does not. This
// handler answers 404 instead, so that unsupported methods do not reveal
// which paths exist. A request whose method does match a route, including
// routes with URL parameters, is handed back to the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	}
}
