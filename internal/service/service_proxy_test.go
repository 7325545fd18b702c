package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/cbs-gateway/internal/adapter"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/mock"
	"github.com/MKhiriev/cbs-gateway/internal/utils"
	"github.com/MKhiriev/cbs-gateway/models"
)

// ─────────────────────────────────────────────
// Forward
// ─────────────────────────────────────────────

func TestProxyService_Forward_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	cbs := mock.NewMockCBSAdapter(ctrl)

	in := models.UpstreamRequest{
		Method: http.MethodGet,
		Path:   "/api/accounts/A001",
		Route:  "/api/accounts/{accountNumber}",
		Query:  url.Values{"limit": {"5"}},
	}
	want := models.UpstreamResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"balance":100}`),
		Latency:    12 * time.Millisecond,
	}
	cbs.EXPECT().Do(gomock.Any(), in).Return(want, nil)

	svc := NewProxyService(cbs, logger.Nop())
	got, err := svc.Forward(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProxyService_Forward_PropagatesRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	cbs := mock.NewMockCBSAdapter(ctrl)

	callerHeader := http.Header{"Authorization": {"Bearer token"}}
	cbs.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UpstreamRequest) (models.UpstreamResponse, error) {
			assert.Equal(t, "req-123", req.Header.Get(utils.HeaderRequestID))
			assert.Equal(t, "Bearer token", req.Header.Get("Authorization"))
			return models.UpstreamResponse{StatusCode: http.StatusOK}, nil
		})

	svc := NewProxyService(cbs, logger.Nop())
	ctx := utils.WithRequestID(context.Background(), "req-123")
	_, err := svc.Forward(ctx, models.UpstreamRequest{Method: http.MethodGet, Path: "/api/customers/C001", Header: callerHeader})

	require.NoError(t, err)
	assert.Empty(t, callerHeader.Get(utils.HeaderRequestID), "caller header must not be mutated")
}

func TestProxyService_Forward_KeepsCallerRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	cbs := mock.NewMockCBSAdapter(ctrl)

	cbs.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UpstreamRequest) (models.UpstreamResponse, error) {
			assert.Equal(t, []string{"from-dashboard"}, req.Header.Values(utils.HeaderRequestID))
			assert.Len(t, req.Header, 1, "request id must not be duplicated under another spelling")
			return models.UpstreamResponse{StatusCode: http.StatusOK}, nil
		})

	svc := NewProxyService(cbs, logger.Nop())
	ctx := utils.WithRequestID(context.Background(), "generated")
	_, err := svc.Forward(ctx, models.UpstreamRequest{
		Method: http.MethodGet,
		Path:   "/api/customers/C001",
		Header: http.Header{utils.HeaderRequestID: {"from-dashboard"}},
	})

	require.NoError(t, err)
}

func TestProxyService_Forward_CanonicalisesHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	cbs := mock.NewMockCBSAdapter(ctrl)

	cbs.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UpstreamRequest) (models.UpstreamResponse, error) {
			assert.Equal(t, "Bearer abc", req.Header.Get("Authorization"))
			assert.Equal(t, "generated", req.Header.Get(utils.HeaderRequestID))
			assert.Contains(t, req.Header, "Authorization")
			assert.NotContains(t, req.Header, "authorization")
			return models.UpstreamResponse{StatusCode: http.StatusOK}, nil
		})

	svc := NewProxyService(cbs, logger.Nop())
	ctx := utils.WithRequestID(context.Background(), "generated")
	_, err := svc.Forward(ctx, models.UpstreamRequest{
		Method: http.MethodGet,
		Path:   "/api/accounts/A001",
		Header: http.Header{"authorization": {"Bearer abc"}},
	})

	require.NoError(t, err)
}

func TestProxyService_Forward_UpstreamErrorIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	cbs := mock.NewMockCBSAdapter(ctrl)

	upstreamResp := models.UpstreamResponse{StatusCode: http.StatusNotFound, Body: []byte(`{"error":"NOT_FOUND"}`)}
	cbs.EXPECT().Do(gomock.Any(), gomock.Any()).
		Return(upstreamResp, &adapter.UpstreamError{Kind: adapter.KindStatus, StatusCode: http.StatusNotFound})

	svc := NewProxyService(cbs, logger.Nop())
	resp, err := svc.Forward(context.Background(), models.UpstreamRequest{Method: http.MethodGet, Path: "/api/accounts/A999"})

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUpstream)
	uErr, ok := adapter.AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, uErr.StatusCode)
	assert.Equal(t, upstreamResp, resp)
}

func TestProxyService_Forward_InvalidRequest_NoUpstreamCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	cbs := mock.NewMockCBSAdapter(ctrl)

	svc := NewProxyService(cbs, logger.Nop())

	for _, req := range []models.UpstreamRequest{
		{Path: "/api/accounts/A001"},
		{Method: http.MethodGet},
		{Method: http.MethodGet, Path: "api/accounts/A001"},
	} {
		_, err := svc.Forward(context.Background(), req)
		assert.True(t, errors.Is(err, ErrInvalidUpstreamRequest))
	}
}
