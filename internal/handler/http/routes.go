package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withSession)

	router.Get("/api/version", h.getServerVersion)

	router.Post("/api/user/register", h.register)
	router.Post("/api/user/login", h.login)
	router.Post("/api/user/logout", h.logout)
	router.Get("/api/user/me", h.me)

	router.Get("/api/boards/{owner}", h.readBoard)
	router.Post("/api/boards/{owner}/questions", h.submitQuestion)
	router.Post("/api/boards/{owner}/questions/{index}/follow", h.followQuestion)
	router.Post("/api/boards/{owner}/questions/{index}/answer", h.answerQuestion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
