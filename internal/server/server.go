package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/cbs-gateway/internal/config"
	"github.com/MKhiriev/cbs-gateway/internal/handler"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/telemetry"
	"github.com/MKhiriev/cbs-gateway/internal/workers"
)

type server struct {
	httpServer      *httpServer
	workers         *workers.Workers
	shutdownTracer  telemetry.ShutdownFunc
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer assembles the process lifecycle around the HTTP handler. The
// workers and the tracer flush function are optional.
func NewServer(handlers *handler.Handlers, bg *workers.Workers, shutdownTracer telemetry.ShutdownFunc, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:         bg,
		shutdownTracer:  shutdownTracer,
		shutdownTimeout: cfg.ShutdownTimeout,
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

	return s.run(ctx)
}

// run serves until ctx is cancelled or the listener fails, then performs
// the shutdown sequence.
func (s *server) run(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.httpServer.server.Addr, err)
	}

	if s.workers != nil {
		s.workers.Run()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()

	s.logger.Info().
		Str("address", ln.Addr().String()).
		Msg("Launching HTTP server")

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("termination signal received, shutting down")
	case err := <-serveErr:
		if err != nil {
			runErr = fmt.Errorf("HTTP server stopped unexpectedly: %w", err)
			s.logger.Error().Err(err).Msg("HTTP server stopped unexpectedly")
		}
	}

	if err := s.shutdown(); err != nil {
		runErr = errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown")
	return runErr
}

func (s *server) shutdown() error {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	var errs []error

	if err := s.httpServer.shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("error shutting down HTTP server: %w", err))
	}

	if s.workers != nil {
		if err := s.workers.Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("error stopping workers: %w", err))
		}
	}

	if s.shutdownTracer != nil {
		if err := s.shutdownTracer(ctx); err != nil {
			errs = append(errs, fmt.Errorf("error flushing traces: %w", err))
		}
	}

	return errors.Join(errs...)
}
