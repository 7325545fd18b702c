package service

import (
	"fmt"

	"github.com/MKhiriev/cbs-gateway/internal/adapter"
	"github.com/MKhiriev/cbs-gateway/internal/config"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/telemetry"
	"github.com/MKhiriev/cbs-gateway/internal/validators"
)

type Services struct {
	ProxyService    ProxyService
	AppInfoService  AppInfoService
	UpstreamMonitor UpstreamMonitor
}

func NewServices(cbs adapter.CBSAdapter, validator validators.Validator, cfg config.StructuredConfig, metrics *telemetry.Metrics, logger *logger.Logger) (*Services, error) {
	monitor := NewUpstreamMonitor(cbs, metrics, logger)

	appInfo, err := NewAppInfoService(cfg.App, monitor, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		ProxyService:    NewProxyValidationService(validator).Wrap(NewProxyService(cbs, logger)),
		AppInfoService:  appInfo,
		UpstreamMonitor: monitor,
	}, nil
}
