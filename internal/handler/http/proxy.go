// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/cbs-gateway/internal/adapter"
	"github.com/MKhiriev/cbs-gateway/internal/app"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/utils"
	"github.com/MKhiriev/cbs-gateway/internal/validators"
	"github.com/MKhiriev/cbs-gateway/models"
)

// Headers set on proxied responses.
const (
	HeaderCBSStatus       = "X-CBS-Status"
	HeaderCBSResponseTime = "X-CBS-Response-Time"
)

// forwardedHeaders are copied from the inbound request to the upstream call.
var forwardedHeaders = []string{"Authorization"}

// proxyRoute describes one gateway endpoint backed by a single CBS call.
// The chi pattern doubles as the upstream path template.
type proxyRoute struct {
	method  string
	pattern string

	// params are identifier route parameters, validated before the call.
	params []string

	// newBody returns a pointer to the request struct to decode, or is nil
	// for bodiless routes.
	newBody func() any

	// failure is the "error" label of the envelope written on failure.
	failure string
}

var proxyRoutes = []proxyRoute{
	{
		method:  http.MethodGet,
		pattern: "/api/accounts/{accountNumber}",
		params:  []string{"accountNumber"},
		failure: "Failed to fetch account",
	},
	{
		method:  http.MethodGet,
		pattern: "/api/customers/{id}",
		params:  []string{"id"},
		failure: "Failed to fetch customer",
	},
	{
		method:  http.MethodGet,
		pattern: "/api/accounts/{accountNumber}/transactions",
		params:  []string{"accountNumber"},
		failure: "Failed to fetch account transactions",
	},
	{
		method:  http.MethodPost,
		pattern: "/api/transfers",
		newBody: func() any { return &models.TransferRequest{} },
		failure: "Failed to process transfer",
	},
	{
		method:  http.MethodPost,
		pattern: "/api/transactions",
		newBody: func() any { return &models.TransactionRequest{} },
		failure: "Failed to process transaction",
	},
	{
		method:  http.MethodPost,
		pattern: "/api/transactions/validate",
		newBody: func() any { return &models.TransactionValidationRequest{} },
		failure: "Failed to validate transaction",
	},
}

// proxy builds the handler for route: validate, forward exactly once, then
// pass the upstream answer through or write the failure envelope.
func (h *Handler) proxy(route proxyRoute) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		path, err := h.upstreamPath(r, route)
		if err != nil {
			h.writeProxyError(w, r, route, err)
			return
		}

		var body any
		if route.newBody != nil {
			body = route.newBody()
			if err = validators.DecodeBody(http.MaxBytesReader(w, r.Body, validators.MaxBodyBytes), body); err != nil {
				h.writeProxyError(w, r, route, err)
				return
			}
		}

		header := http.Header{}
		for _, name := range forwardedHeaders {
			if v := r.Header.Values(name); len(v) > 0 {
				header[http.CanonicalHeaderKey(name)] = v
			}
		}

		resp, err := h.services.ProxyService.Forward(ctx, models.UpstreamRequest{
			Method: route.method,
			Path:   path,
			Route:  route.pattern,
			Query:  r.URL.Query(),
			Header: header,
			Body:   body,
		})
		setCBSHeaders(w, resp, err)

		if err != nil {
			h.writeProxyError(w, r, route, err)
			return
		}

		if _, err = utils.WriteRaw(w, resp.Header.Get("Content-Type"), resp.Body, resp.StatusCode); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing proxied response")
		}
	}
}

// upstreamPath validates every identifier parameter of route and substitutes
// the sanitised values into the path template. All parameter violations are
// reported together.
func (h *Handler) upstreamPath(r *http.Request, route proxyRoute) (string, error) {
	path := route.pattern
	var violations []models.Violation

	for _, name := range route.params {
		value, err := h.validator.ValidateParam(r.Context(), name, chi.URLParam(r, name))
		if err != nil {
			v := validators.Violations(err)
			if v == nil {
				return "", err
			}
			violations = append(violations, v...)
			continue
		}
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}

	if len(violations) > 0 {
		return "", &validators.ValidationError{Violations: violations}
	}
	return path, nil
}

// setCBSHeaders exposes the upstream status and round-trip time whenever an
// upstream call was attempted.
func setCBSHeaders(w http.ResponseWriter, resp models.UpstreamResponse, err error) {
	if err != nil {
		if _, ok := adapter.AsUpstreamError(err); !ok {
			return
		}
	}

	w.Header().Set(HeaderCBSResponseTime, strconv.FormatInt(resp.Latency.Milliseconds(), 10))
	if resp.StatusCode > 0 {
		w.Header().Set(HeaderCBSStatus, strconv.Itoa(resp.StatusCode))
	}
}

func (h *Handler) writeProxyError(w http.ResponseWriter, r *http.Request, route proxyRoute, err error) {
	log := logger.FromRequest(r)

	if errors.Is(err, validators.ErrValidationFailed) {
		log.Debug().Err(err).Msg("request rejected by validation")
		utils.WriteJSON(w, models.ValidationErrorResponse{
			Error:   app.MsgValidationFailed,
			Details: validators.Violations(err),
		}, http.StatusBadRequest)
		return
	}

	if errors.Is(err, validators.ErrBodyTooLarge) {
		log.Debug().Err(err).Msg("request body rejected")
		utils.WriteJSON(w, models.ErrorResponse{
			Error:   app.MsgPayloadTooLarge,
			Message: app.MsgBodyLimitExceeded,
		}, http.StatusRequestEntityTooLarge)
		return
	}

	status, message := upstreamFailure(err)
	log.Error().Err(err).Int("status", status).Msg(route.failure)

	utils.WriteJSON(w, models.ErrorResponse{
		Error:   route.failure,
		Message: message,
	}, status)
}
