// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cors decides which caller origins may use the gateway and writes
// the CORS response headers for the allowed ones.
package cors

import (
	"strings"
)

// Fallback allow-lists used when no origins are configured.
var (
	ProductionOrigins = []string{
		"http://localhost:30004",
		"http://dashboard-service:80",
	}

	DefaultOrigins = []string{
		"http://localhost:3001",
		"http://localhost:30004",
		"http://dashboard-service:80",
		"http://localhost:3000",
	}
)

// Decision is the outcome of checking one origin.
type Decision struct {
	Allowed bool

	// Warning is set when the origin was allowed only because the gateway
	// runs in development mode.
	Warning string
}

// Policy is an origin allow-list. It is read-only after construction and
// safe for concurrent use.
type Policy struct {
	origins []string
	allowed map[string]struct{}
	devMode bool
}

// NewPolicy builds the policy for the given deployment mode. configured
// overrides the built-in list when it has at least one non-blank entry.
func NewPolicy(environment string, configured []string) *Policy {
	origins := normalize(configured)
	if len(origins) == 0 {
		if environment == "production" {
			origins = ProductionOrigins
		} else {
			origins = DefaultOrigins
		}
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}

	return &Policy{
		origins: origins,
		allowed: allowed,
		devMode: environment == "development",
	}
}

// Origins returns a copy of the effective allow-list.
func (p *Policy) Origins() []string {
	return append([]string(nil), p.origins...)
}

// Decide checks origin against the allow-list. Requests without an Origin
// header (server-to-server, curl) are always allowed.
func (p *Policy) Decide(origin string) Decision {
	if origin == "" {
		return Decision{Allowed: true}
	}

	if _, ok := p.allowed[origin]; ok {
		return Decision{Allowed: true}
	}

	if p.devMode {
		return Decision{
			Allowed: true,
			Warning: "origin " + origin + " is not in the allow-list, allowed in development mode",
		}
	}

	return Decision{}
}

func normalize(origins []string) []string {
	var out []string
	for _, o := range origins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			out = append(out, o)
		}
	}
	return out
}
