// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the upstream CBS simulator.
//
// The primary abstraction is [CBSAdapter], which decouples the service layer
// from the underlying HTTP client. Failures are returned as *[UpstreamError]
// carrying one of a closed set of kinds (status, timeout, unavailable,
// internal) so callers never have to inspect transport errors themselves.
package adapter

import (
	"context"

	"github.com/MKhiriev/cbs-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cbs_adapter_mock.go -package=mock

// CBSAdapter performs calls against the CBS simulator.
type CBSAdapter interface {
	// Do sends exactly one request upstream. A response with status >= 400
	// is returned together with an *UpstreamError of kind KindStatus. A call
	// that produced no response returns a zero UpstreamResponse (apart from
	// Latency) and an *UpstreamError of another kind.
	Do(ctx context.Context, req models.UpstreamRequest) (models.UpstreamResponse, error)

	// Ping checks that the upstream health endpoint answers with a 2xx
	// status.
	Ping(ctx context.Context) error
}
