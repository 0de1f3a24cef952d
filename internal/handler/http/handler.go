package http

import (
	"github.com/MKhiriev/go-ask-board/internal/config"
	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/internal/service"
)

const defaultSessionCookieName = "sessionId"

type Handler struct {
	services *service.Services

	// cookieName is the name of the session cookie.
	cookieName    string
	secureCookies bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	cookieName := cfg.SessionCookieName
	if cookieName == "" {
		cookieName = defaultSessionCookieName
	}

	logger.Info().Str("session_cookie", cookieName).Msg("http handler created")
	return &Handler{
		services:      services,
		cookieName:    cookieName,
		secureCookies: cfg.SecureCookies,
		logger:        logger,
	}
}
