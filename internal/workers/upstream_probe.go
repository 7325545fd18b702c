// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/service"
)

var ErrInvalidProbeInterval = errors.New("probe interval must be positive")

// UpstreamProbe periodically checks the CBS simulator health endpoint.
type UpstreamProbe struct {
	cron    *cron.Cron
	monitor service.UpstreamMonitor
	timeout time.Duration

	logger *logger.Logger
}

// NewUpstreamProbe schedules monitor.Check every interval. A positive
// timeout bounds each check.
func NewUpstreamProbe(monitor service.UpstreamMonitor, interval, timeout time.Duration, logger *logger.Logger) (*UpstreamProbe, error) {
	if interval <= 0 {
		return nil, ErrInvalidProbeInterval
	}

	p := &UpstreamProbe{
		cron:    cron.New(cron.WithChain(probeChain(newCronLogger(logger))...)),
		monitor: monitor,
		timeout: timeout,
		logger:  logger,
	}

	if _, err := p.cron.AddFunc(fmt.Sprintf("@every %s", interval), p.probe); err != nil {
		return nil, fmt.Errorf("error scheduling upstream probe: %w", err)
	}

	return p, nil
}

// Run starts the schedule. The first check happens after one interval; until
// then the upstream state stays unknown.
func (p *UpstreamProbe) Run() {
	p.logger.Info().Msg("starting upstream probe")
	p.cron.Start()
}

// Stop halts the schedule and waits for a running check to return.
func (p *UpstreamProbe) Stop(ctx context.Context) error {
	done := p.cron.Stop()

	select {
	case <-done.Done():
		p.logger.Info().Msg("upstream probe stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("error waiting for upstream probe to stop: %w", ctx.Err())
	}
}

// probeChain wraps each scheduled check. Recover must sit inside
// SkipIfStillRunning: the skip guard only releases its token when the job
// returns normally.
func probeChain(l cron.Logger) []cron.JobWrapper {
	return []cron.JobWrapper{cron.SkipIfStillRunning(l), cron.Recover(l)}
}

func (p *UpstreamProbe) probe() {
	ctx := context.Background()
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	state := p.monitor.Check(ctx)
	p.logger.Debug().Str("upstream", string(state)).Msg("upstream probe finished")
}

// cronLogger routes robfig/cron messages to zerolog.
type cronLogger struct {
	logger *logger.Logger
}

func newCronLogger(l *logger.Logger) cron.Logger {
	return cronLogger{logger: l}
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
