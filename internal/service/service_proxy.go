package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/cbs-gateway/internal/adapter"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/utils"
	"github.com/MKhiriev/cbs-gateway/models"
)

type proxyService struct {
	adapter adapter.CBSAdapter

	logger *logger.Logger
}

func NewProxyService(cbs adapter.CBSAdapter, logger *logger.Logger) ProxyService {
	return &proxyService{
		adapter: cbs,
		logger:  logger,
	}
}

// Forward implements ProxyService. The request id from ctx is propagated
// upstream unless the caller already sent one.
func (s *proxyService) Forward(ctx context.Context, req models.UpstreamRequest) (models.UpstreamResponse, error) {
	if req.Method == "" || !strings.HasPrefix(req.Path, "/") {
		return models.UpstreamResponse{}, fmt.Errorf("%w: method %q path %q", ErrInvalidUpstreamRequest, req.Method, req.Path)
	}

	if requestID, ok := utils.GetRequestIDFromContext(ctx); ok {
		header := make(http.Header, len(req.Header)+1)
		for name, values := range req.Header {
			key := http.CanonicalHeaderKey(name)
			header[key] = append(header[key], values...)
		}
		if header.Get(utils.HeaderRequestID) == "" {
			header.Set(utils.HeaderRequestID, requestID)
		}
		req.Header = header
	}

	resp, err := s.adapter.Do(ctx, req)
	if err != nil {
		return resp, fmt.Errorf("error forwarding %s %s: %w", req.Method, req.Path, err)
	}

	logger.FromContext(ctx).Debug().
		Str("upstream_path", req.Path).
		Int("cbs_status", resp.StatusCode).
		Dur("latency", resp.Latency).
		Msg("CBS call succeeded")

	return resp, nil
}
