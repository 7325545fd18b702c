// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Deployment modes recognised by the gateway. Any other value behaves like
// a non-production, non-development deployment (e.g. "staging", "test").
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	// EnvUnspecified is used when ENVIRONMENT is not set. It is neither
	// production nor development, so unknown CORS origins are denied.
	EnvUnspecified = "unspecified"
)

// StructuredConfig is the top-level configuration container for the
// gateway. It aggregates all sub-configurations and is populated by merging
// values from a .env file, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the reported version and logging settings.
	App App `envPrefix:"APP_"`

	// Server holds the listen address and lifecycle settings of the inbound
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the upstream CBS simulator client settings.
	Adapter Adapter `envPrefix:"CBS_"`

	// CORS holds the caller origin allow-list.
	CORS CORS `envPrefix:"CORS_"`

	// Telemetry holds the OpenTelemetry exporter settings.
	Telemetry Telemetry `envPrefix:"OTEL_"`

	// Environment is the deployment mode: "production", "development" or
	// anything else. It changes the CORS fallback list and log verbosity.
	// Env: ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Port is the listen port used when Server.HTTPAddress is not set.
	// Env: PORT
	Port int `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is reported by GET /health when the binary carries no build
	// version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and lifecycle settings for the inbound transport.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format. When empty it is
	// derived from Port as "0.0.0.0:<port>".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ReadHeaderTimeout bounds how long a client may take to send headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// ShutdownTimeout is the grace period in-flight requests get after a
	// termination signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// ImmediateShutdown skips the grace period and closes all connections
	// as soon as a termination signal arrives.
	// Env: SERVER_IMMEDIATE_SHUTDOWN
	ImmediateShutdown bool `env:"IMMEDIATE_SHUTDOWN"`
}

// Adapter holds the upstream CBS simulator client settings.
type Adapter struct {
	// BaseURL is the upstream base URL (e.g. "http://cbs-simulator-service:4000").
	// Env: CBS_SIMULATOR_URL
	BaseURL string `env:"SIMULATOR_URL"`

	// RequestTimeout bounds every upstream call.
	// Env: CBS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ProbeInterval is how often the upstream health probe runs.
	// Env: CBS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// ProbeDisabled turns the upstream health probe off.
	// Env: CBS_PROBE_DISABLED
	ProbeDisabled bool `env:"PROBE_DISABLED"`
}

// CORS holds the caller origin allow-list.
type CORS struct {
	// AllowedOrigins overrides the built-in fallback list.
	// Env: CORS_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Telemetry holds OpenTelemetry settings.
type Telemetry struct {
	// OTLPEndpoint is the gRPC collector address ("host:port"). When empty
	// spans are still created, so trace ids reach the logs, but nothing is
	// exported.
	// Env: OTEL_EXPORTER_OTLP_ENDPOINT
	OTLPEndpoint string `env:"EXPORTER_OTLP_ENDPOINT"`

	// ServiceName is the service.name resource attribute.
	// Env: OTEL_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`
}

// IsProduction reports whether the gateway runs in production mode.
func (cfg *StructuredConfig) IsProduction() bool {
	return cfg.Environment == EnvProduction
}

// IsDevelopment reports whether the gateway runs in development mode.
func (cfg *StructuredConfig) IsDevelopment() bool {
	return cfg.Environment == EnvDevelopment
}

// GetStructuredConfig loads, merges, and validates the gateway
// configuration. A field takes its value from the first source that sets it,
// in this order:
//  1. Environment variables (including those loaded from ./.env)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(".env", os.Args[1:])
}

func loadStructuredConfig(dotEnvPath string, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvPath).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
