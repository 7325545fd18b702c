package service

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/cbs-gateway/internal/adapter"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/telemetry"
	"github.com/MKhiriev/cbs-gateway/models"
)

type upstreamMonitor struct {
	adapter adapter.CBSAdapter
	metrics *telemetry.Metrics

	// state holds a models.UpstreamState.
	state atomic.Value

	logger *logger.Logger
}

// NewUpstreamMonitor returns a monitor in the unknown state. Nothing is
// checked until Check is called.
func NewUpstreamMonitor(cbs adapter.CBSAdapter, metrics *telemetry.Metrics, logger *logger.Logger) UpstreamMonitor {
	m := &upstreamMonitor{
		adapter: cbs,
		metrics: metrics,
		logger:  logger,
	}
	m.state.Store(models.UpstreamUnknown)
	return m
}

func (m *upstreamMonitor) Check(ctx context.Context) models.UpstreamState {
	state := models.UpstreamUp
	err := m.adapter.Ping(ctx)
	if err != nil {
		state = models.UpstreamDown
	}

	prev, _ := m.state.Swap(state).(models.UpstreamState)
	m.metrics.SetUpstreamUp(state == models.UpstreamUp)

	if prev != state {
		if state == models.UpstreamUp {
			m.logger.Info().Str("previous", string(prev)).Msg("CBS simulator is reachable")
		} else {
			m.logger.Warn().Err(err).Str("previous", string(prev)).Msg("CBS simulator is unreachable")
		}
	}

	return state
}

func (m *upstreamMonitor) State() models.UpstreamState {
	state, _ := m.state.Load().(models.UpstreamState)
	return state
}
