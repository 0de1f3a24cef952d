package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-ask-board/internal/config"
	"github.com/MKhiriev/go-ask-board/internal/handler"
	"github.com/MKhiriev/go-ask-board/internal/logger"
	"github.com/MKhiriev/go-ask-board/internal/workers"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer      *httpServer
	workers         *workers.Workers
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, background *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:         background,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	// workers outlive ctx: they are stopped only after HTTP has drained
	workersCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorkers()

	workersDone := make(chan error, 1)
	if s.workers != nil {
		go func() {
			workersDone <- s.workers.Run(workersCtx)
		}()
	} else {
		close(workersDone)
	}

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- s.httpServer.RunServer()
	}()

	var runErr error
	workersFinished := false
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received")
	case runErr = <-serveDone:
	case runErr = <-workersDone:
		workersFinished = true
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}

	stopWorkers()
	if !workersFinished {
		if err := <-workersDone; err != nil && !errors.Is(err, context.Canceled) {
			runErr = errors.Join(runErr, err)
		}
	}

	if runErr != nil {
		s.logger.Err(runErr).Msg("server stopped with error")
		return runErr
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
