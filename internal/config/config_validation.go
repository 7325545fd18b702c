// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the gateway.
func (cfg *StructuredConfig) validate() error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("%w: port %d is out of range", ErrInvalidServerConfigs, cfg.Port)
	}

	if cfg.Server.ShutdownTimeout < 0 || cfg.Server.ReadHeaderTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	u, err := url.Parse(cfg.Adapter.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: CBS simulator url %q must include scheme and host", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}

	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.ProbeInterval < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidAdapterConfigs)
	}

	return nil
}
