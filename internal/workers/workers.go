package workers

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cbs-gateway/internal/config"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers enabled by cfg.
func NewWorkers(services *service.Services, cfg config.Adapter, logger *logger.Logger) (*Workers, error) {
	w := &Workers{}

	if cfg.ProbeDisabled {
		logger.Info().Msg("upstream probe is disabled")
		return w, nil
	}

	probe, err := NewUpstreamProbe(services.UpstreamMonitor, cfg.ProbeInterval, cfg.RequestTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating upstream probe: %w", err)
	}
	w.workers = append(w.workers, probe)

	return w, nil
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker and joins their errors.
func (w *Workers) Stop(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := worker.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
