package handler

import (
	"github.com/MKhiriev/cbs-gateway/internal/config"
	"github.com/MKhiriev/cbs-gateway/internal/cors"
	"github.com/MKhiriev/cbs-gateway/internal/handler/http"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/service"
	"github.com/MKhiriev/cbs-gateway/internal/telemetry"
	"github.com/MKhiriev/cbs-gateway/internal/validators"
)

// Handlers groups the transport handlers the server exposes.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler when an HTTP address is configured.
func NewHandlers(
	services *service.Services,
	validator validators.Validator,
	corsPolicy *cors.Policy,
	metrics *telemetry.Metrics,
	cfg config.Server,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, validator, corsPolicy, metrics, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
