package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/cbs-gateway/internal/config"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/mock"
	"github.com/MKhiriev/cbs-gateway/internal/validators"
)

func TestNewServices(t *testing.T) {
	cbs := mock.NewMockCBSAdapter(gomock.NewController(t))
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0"}}

	services, err := NewServices(cbs, validators.NewRequestValidator(), cfg, nil, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.ProxyService)
	assert.NotNil(t, services.AppInfoService)
	assert.NotNil(t, services.UpstreamMonitor)
	assert.IsType(t, &ProxyValidationService{}, services.ProxyService)
}

func TestNewServices_MissingVersion(t *testing.T) {
	cbs := mock.NewMockCBSAdapter(gomock.NewController(t))

	services, err := NewServices(cbs, validators.NewRequestValidator(), config.StructuredConfig{}, nil, logger.Nop())

	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
