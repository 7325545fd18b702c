// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

const (
	DefaultPort              = 3000
	DefaultListenHost        = "0.0.0.0"
	DefaultVersion           = "1.0.0"
	DefaultCBSSimulatorURL   = "http://cbs-simulator-service:4000"
	DefaultRequestTimeout    = 10 * time.Second
	DefaultProbeInterval     = 30 * time.Second
	DefaultShutdownTimeout   = 15 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultServiceName       = "cbs-gateway"
)

// applyDefaults fills every field that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Environment == "" {
		cfg.Environment = EnvUnspecified
	}

	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "debug"
		if cfg.IsProduction() {
			cfg.App.LogLevel = "info"
		}
	}

	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = net.JoinHostPort(DefaultListenHost, strconv.Itoa(cfg.Port))
	}
	if cfg.Server.ReadHeaderTimeout == 0 {
		cfg.Server.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultCBSSimulatorURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.ProbeInterval == 0 {
		cfg.Adapter.ProbeInterval = DefaultProbeInterval
	}

	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = DefaultServiceName
	}
}
