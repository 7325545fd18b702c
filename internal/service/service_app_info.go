package service

import (
	"context"
	"time"

	"github.com/MKhiriev/cbs-gateway/internal/config"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/models"
)

// HealthStatusOK is the fixed status reported while the process serves.
const HealthStatusOK = "OK"

type appInfoService struct {
	appVersion string
	startedAt  time.Time
	now        func() time.Time

	monitor UpstreamMonitor

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, monitor UpstreamMonitor, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		startedAt:  time.Now(),
		now:        time.Now,
		monitor:    monitor,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health reports liveness. The upstream state is informational only.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	upstream := models.UpstreamUnknown
	if s.monitor != nil {
		upstream = s.monitor.State()
	}

	return models.HealthResponse{
		Status:   HealthStatusOK,
		Version:  s.appVersion,
		Uptime:   s.now().Sub(s.startedAt).Seconds(),
		Upstream: upstream,
	}
}
