package main

import (
	"cmp"
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-ask-board/internal/adapter"
	"github.com/MKhiriev/go-ask-board/internal/config"
	"github.com/MKhiriev/go-ask-board/internal/handler"
	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/internal/server"
	"github.com/MKhiriev/go-ask-board/internal/service"
	"github.com/MKhiriev/go-ask-board/internal/store"
	"github.com/MKhiriev/go-ask-board/internal/utils"
	"github.com/MKhiriev/go-ask-board/internal/workers"
	"github.com/MKhiriev/go-ask-board/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(cmp.Or(buildVersion, "dev"), buildDate, buildCommit)
	fmt.Printf("Build: %s\n", buildInfo)

	log := logger.NewLogger("go-ask-board")
	if err := run(buildInfo, log); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func run(buildInfo models.AppBuildInfo, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("data_dir", cfg.Storage.Files.DataDir).
		Bool("sql_storage", cfg.Storage.DB.DSN != "").
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	notifier, err := adapter.NewNotifier(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("error creating notifier: %w", err)
	}
	dispatcher := workers.NewNotificationDispatcher(notifier, utils.NewUUIDGenerator(), cfg.Workers, log)

	services, err := service.NewServices(storages, dispatcher, *cfg, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(dispatcher), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}
