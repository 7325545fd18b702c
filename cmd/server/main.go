package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cbs-gateway/internal/adapter"
	"github.com/MKhiriev/cbs-gateway/internal/config"
	"github.com/MKhiriev/cbs-gateway/internal/cors"
	"github.com/MKhiriev/cbs-gateway/internal/handler"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/server"
	"github.com/MKhiriev/cbs-gateway/internal/service"
	"github.com/MKhiriev/cbs-gateway/internal/telemetry"
	"github.com/MKhiriev/cbs-gateway/internal/validators"
	"github.com/MKhiriev/cbs-gateway/internal/workers"
	"github.com/MKhiriev/cbs-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	appInfo := models.NewAppInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(appInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("cbs-gateway", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("cbs-gateway", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg.Telemetry, cfg.App.Version, cfg.Environment, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing tracing")
	}

	metrics := telemetry.NewMetrics()

	cbs, err := adapter.NewHTTPCBSAdapter(cfg.Adapter, metrics, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating CBS adapter")
	}

	validator := validators.NewRequestValidator()

	services, err := service.NewServices(cbs, validator, *cfg, metrics, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	corsPolicy := cors.NewPolicy(cfg.Environment, cfg.CORS.AllowedOrigins)
	log.Info().Strs("origins", corsPolicy.Origins()).Msg("CORS allowed origins")

	handlers, err := handler.NewHandlers(services, validator, corsPolicy, metrics, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bg, err := workers.NewWorkers(services, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}

	srv, err := server.NewServer(handlers, bg, shutdownTracer, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Str("upstream", cfg.Adapter.BaseURL).
		Time("started_at", appInfo.StartedAt()).
		Msg("cbs gateway starting")

	if err := srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
