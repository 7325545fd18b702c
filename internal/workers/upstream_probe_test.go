package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/models"
)

// countingMonitor records each Check call.
type countingMonitor struct {
	checks      atomic.Int32
	hadDeadline atomic.Bool
	panicOnce   atomic.Bool
}

func (m *countingMonitor) Check(ctx context.Context) models.UpstreamState {
	m.checks.Add(1)
	_, ok := ctx.Deadline()
	m.hadDeadline.Store(ok)
	if m.panicOnce.CompareAndSwap(true, false) {
		panic("probe exploded")
	}
	return models.UpstreamUp
}

func (m *countingMonitor) State() models.UpstreamState {
	return models.UpstreamUp
}

func TestNewUpstreamProbe_InvalidInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		p, err := NewUpstreamProbe(&countingMonitor{}, interval, time.Second, logger.Nop())
		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrInvalidProbeInterval)
	}
}

func TestUpstreamProbe_ProbeAppliesTimeout(t *testing.T) {
	monitor := &countingMonitor{}
	p, err := NewUpstreamProbe(monitor, time.Minute, 2*time.Second, logger.Nop())
	require.NoError(t, err)

	p.probe()
	assert.Equal(t, int32(1), monitor.checks.Load())
	assert.True(t, monitor.hadDeadline.Load())

	p.timeout = 0
	p.probe()
	assert.False(t, monitor.hadDeadline.Load())
}

// TestProbeChain_PanicDoesNotBlockLaterRuns verifies that a panicking check
// is recovered without leaving the skip guard locked.
func TestProbeChain_PanicDoesNotBlockLaterRuns(t *testing.T) {
	monitor := &countingMonitor{}
	monitor.panicOnce.Store(true)

	job := cron.NewChain(probeChain(newCronLogger(logger.Nop()))...).Then(cron.FuncJob(func() {
		monitor.Check(context.Background())
	}))

	assert.NotPanics(t, job.Run)
	job.Run()
	job.Run()

	assert.Equal(t, int32(3), monitor.checks.Load())
}

func TestUpstreamProbe_RunsOnScheduleAndSurvivesPanics(t *testing.T) {
	monitor := &countingMonitor{}
	monitor.panicOnce.Store(true)

	// robfig/cron rounds sub-second @every schedules up to one second.
	p, err := NewUpstreamProbe(monitor, time.Second, time.Second, logger.Nop())
	require.NoError(t, err)

	p.Run()
	assert.Eventually(t, func() bool { return monitor.checks.Load() >= 2 }, 5*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, p.Stop(ctx))

	stopped := monitor.checks.Load()
	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, stopped, monitor.checks.Load(), "no checks after Stop")
}
