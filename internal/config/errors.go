package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listen or lifecycle settings
	// (for example, a port outside 1-65535).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid upstream client settings
	// (for example, a CBS simulator URL without scheme or host).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
