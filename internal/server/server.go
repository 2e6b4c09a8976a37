package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/solar-quote/internal/config"
	myHTTP "github.com/MKhiriev/solar-quote/internal/handler/http"
	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer builds the runner from the HTTP handler and the background
// workers. workers may be nil.
func NewServer(handler *myHTTP.Handler, workers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done or the listener fails, then shuts the HTTP
// server down and waits for the workers to return.
func (s *server) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workersDone := make(chan error, 1)
	if s.workers != nil {
		go func() {
			workersDone <- s.workers.Run(ctx)
		}()
	} else {
		close(workersDone)
	}

	listenErr := make(chan error, 1)
	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer(listenErr)

	var err error
	select {
	case <-ctx.Done():
	case err = <-listenErr:
	}

	cancel()
	s.Shutdown()

	if werr := <-workersDone; werr != nil && err == nil {
		err = werr
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}
