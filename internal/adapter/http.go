// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/cbs-gateway/internal/config"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/telemetry"
	"github.com/MKhiriev/cbs-gateway/internal/utils"
	"github.com/MKhiriev/cbs-gateway/models"
)

// HealthPath is the upstream endpoint used by Ping.
const HealthPath = "/health"

type httpCBSAdapter struct {
	client  *utils.HTTPClient
	timeout time.Duration

	metrics *telemetry.Metrics
	logger  *logger.Logger
}

// NewHTTPCBSAdapter constructs the resty implementation of [CBSAdapter].
// It normalises cfg.BaseURL, applies cfg.RequestTimeout to every call and
// installs the timing hooks.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPCBSAdapter(cfg config.Adapter, metrics *telemetry.Metrics, log *logger.Logger) (CBSAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid CBS simulator url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.
		OnBeforeRequest(stampStart).
		OnAfterResponse(recordElapsed)

	log.Debug().
		Str("base_url", baseURL).
		Dur("timeout", cfg.RequestTimeout).
		Msg("CBS adapter configured")

	return &httpCBSAdapter{
		client:  client,
		timeout: cfg.RequestTimeout,
		metrics: metrics,
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Do implements [CBSAdapter].
func (a *httpCBSAdapter) Do(ctx context.Context, in models.UpstreamRequest) (models.UpstreamResponse, error) {
	route := in.Route
	if route == "" {
		route = in.Path
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	ctx, span := telemetry.Tracer().Start(ctx, "CBS "+in.Method+" "+route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", in.Method),
			attribute.String("http.route", route),
			attribute.String("url.path", in.Path),
		),
	)
	defer span.End()

	req := a.client.R().SetContext(ctx)
	for name, values := range in.Header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if len(in.Query) > 0 {
		req.SetQueryParamsFromValues(in.Query)
	}
	if in.Body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(in.Body)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := req.Execute(in.Method, in.Path)
	latency := elapsed(req)

	if err != nil {
		uErr := &UpstreamError{Kind: classifyError(err), Latency: latency, Err: err}
		a.metrics.ObserveUpstream(in.Method, route, string(uErr.Kind), 0, latency)
		span.RecordError(err)
		span.SetStatus(codes.Error, string(uErr.Kind))

		logger.FromContext(ctx).Error().
			Err(err).
			Str("kind", string(uErr.Kind)).
			Str("upstream_path", in.Path).
			Dur("latency", latency).
			Msg("CBS call failed")

		return models.UpstreamResponse{Latency: latency}, uErr
	}

	out := models.UpstreamResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
		Latency:    latency,
	}
	span.SetAttributes(attribute.Int("http.response.status_code", out.StatusCode))

	if err = mapHTTPError(resp, latency); err != nil {
		a.metrics.ObserveUpstream(in.Method, route, telemetry.OutcomeStatus, out.StatusCode, latency)
		if out.StatusCode >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(out.StatusCode))
		}

		logger.FromContext(ctx).Warn().
			Err(err).
			Int("cbs_status", out.StatusCode).
			Str("upstream_path", in.Path).
			Dur("latency", latency).
			Msg("CBS responded with an error status")

		return out, err
	}

	a.metrics.ObserveUpstream(in.Method, route, telemetry.OutcomeSuccess, out.StatusCode, latency)
	return out, nil
}

// Ping implements [CBSAdapter].
func (a *httpCBSAdapter) Ping(ctx context.Context) error {
	_, err := a.Do(ctx, models.UpstreamRequest{
		Method: resty.MethodGet,
		Path:   HealthPath,
		Route:  HealthPath,
	})
	return err
}
