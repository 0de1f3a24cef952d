package service

import (
	"fmt"

	"github.com/MKhiriev/go-ask-board/internal/config"
	"github.com/MKhiriev/go-ask-board/internal/crypto"
	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/internal/store"
	"github.com/MKhiriev/go-ask-board/models"
)

type Services struct {
	AuthService    AuthService
	BoardService   BoardService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. Board commands are
// validated before they reach the board engine.
func NewServices(
	storages *store.Storages,
	dispatcher NotificationDispatcher,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(storages.UserRepository, storages.SessionRepository, crypto.NewPasswordHasher(), logger)
	boardService := NewBoardValidationService().Wrap(
		NewBoardService(storages.BoardRepository, authService, dispatcher, logger),
	)

	return &Services{
		AuthService:    authService,
		BoardService:   boardService,
		AppInfoService: appInfoService,
	}, nil
}
