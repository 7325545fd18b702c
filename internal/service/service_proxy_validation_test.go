package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/cbs-gateway/internal/mock"
	"github.com/MKhiriev/cbs-gateway/internal/validators"
	"github.com/MKhiriev/cbs-gateway/models"
)

func newValidatedProxy(t *testing.T) (ProxyService, *mock.MockProxyService) {
	t.Helper()
	inner := mock.NewMockProxyService(gomock.NewController(t))
	return NewProxyValidationService(validators.NewRequestValidator()).Wrap(inner), inner
}

// ─────────────────────────────────────────────
// Forward
// ─────────────────────────────────────────────

func TestProxyValidationService_ValidBody_ForwardsSanitised(t *testing.T) {
	svc, inner := newValidatedProxy(t)

	body := &models.TransferRequest{From: " A001 ", To: "A002", Amount: "250", Description: "<b>rent</b>"}
	inner.EXPECT().Forward(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UpstreamRequest) (models.UpstreamResponse, error) {
			got, ok := req.Body.(*models.TransferRequest)
			require.True(t, ok)
			assert.Equal(t, "A001", got.From)
			assert.Equal(t, "&lt;b&gt;rent&lt;&#x2F;b&gt;", got.Description)
			return models.UpstreamResponse{StatusCode: http.StatusCreated}, nil
		})

	resp, err := svc.Forward(context.Background(), models.UpstreamRequest{Method: http.MethodPost, Path: "/api/transfers", Body: body})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestProxyValidationService_InvalidBody_InnerNotCalled(t *testing.T) {
	svc, _ := newValidatedProxy(t)

	body := &models.TransactionRequest{AccountNumber: "A001", Amount: "10", Type: "refund"}
	_, err := svc.Forward(context.Background(), models.UpstreamRequest{Method: http.MethodPost, Path: "/api/transactions", Body: body})

	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrValidationFailed)
	violations := validators.Violations(err)
	require.Len(t, violations, 1)
	assert.Equal(t, "type", violations[0].Field)
}

func TestProxyValidationService_NoBody_PassesThrough(t *testing.T) {
	svc, inner := newValidatedProxy(t)

	req := models.UpstreamRequest{Method: http.MethodGet, Path: "/api/accounts/A001"}
	inner.EXPECT().Forward(gomock.Any(), req).Return(models.UpstreamResponse{StatusCode: http.StatusOK}, nil)

	_, err := svc.Forward(context.Background(), req)
	assert.NoError(t, err)
}

func TestProxyValidationService_WrapReturnsIndependentCopies(t *testing.T) {
	wrapper := NewProxyValidationService(validators.NewRequestValidator())
	ctrl := gomock.NewController(t)

	a := wrapper.Wrap(mock.NewMockProxyService(ctrl))
	b := wrapper.Wrap(mock.NewMockProxyService(ctrl))

	assert.NotSame(t, a, b)
}
