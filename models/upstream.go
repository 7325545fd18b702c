// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/http"
	"net/url"
	"time"
)

// UpstreamRequest is a single call to the CBS simulator.
type UpstreamRequest struct {
	// Method is the HTTP method sent upstream.
	Method string

	// Path is the resource path relative to the upstream base URL, with all
	// route parameters already substituted (e.g. "/api/accounts/A001").
	Path string

	// Route is the path template (e.g. "/api/accounts/{accountNumber}"),
	// used as a low-cardinality label for metrics and spans.
	Route string

	// Query is forwarded verbatim.
	Query url.Values

	// Header holds caller headers to forward (e.g. Authorization).
	Header http.Header

	// Body is the JSON payload to send; nil for bodiless requests.
	Body any
}

// UpstreamResponse is what the CBS simulator answered.
type UpstreamResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	// Latency is the round-trip time measured by the client hooks.
	Latency time.Duration
}

// UpstreamState is the reachability of the CBS simulator as seen by the
// background probe.
type UpstreamState string

const (
	UpstreamUnknown UpstreamState = "unknown"
	UpstreamUp      UpstreamState = "up"
	UpstreamDown    UpstreamState = "down"
)
