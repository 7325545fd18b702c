// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/cbs-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ProxyServiceWrapper

// ProxyService forwards one inbound call to the CBS simulator.
type ProxyService interface {
	// Forward performs exactly one upstream call. On an upstream error status
	// both the response and an error wrapping *adapter.UpstreamError are
	// returned.
	Forward(ctx context.Context, req models.UpstreamRequest) (models.UpstreamResponse, error)
}

// ProxyServiceWrapper defines middleware composition for ProxyService.
type ProxyServiceWrapper interface {
	Wrap(ProxyService) ProxyService
}

// AppInfoService reports gateway identity and liveness.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}

// UpstreamMonitor keeps the last known reachability of the CBS simulator.
type UpstreamMonitor interface {
	// Check pings the upstream, stores and returns the resulting state.
	Check(ctx context.Context) models.UpstreamState
	State() models.UpstreamState
}
