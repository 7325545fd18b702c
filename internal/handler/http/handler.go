package http

import (
	"github.com/MKhiriev/cbs-gateway/internal/cors"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/service"
	"github.com/MKhiriev/cbs-gateway/internal/telemetry"
	"github.com/MKhiriev/cbs-gateway/internal/utils"
	"github.com/MKhiriev/cbs-gateway/internal/validators"
)

type Handler struct {
	services   *service.Services
	validator  validators.Validator
	corsPolicy *cors.Policy
	metrics    *telemetry.Metrics
	requestIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, corsPolicy *cors.Policy, metrics *telemetry.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		validator:  validator,
		corsPolicy: corsPolicy,
		metrics:    metrics,
		requestIDs: utils.NewUUIDGenerator(),
		logger:     logger,
	}
}
