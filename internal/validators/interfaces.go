// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators sanitises and validates inbound gateway input before
// anything is forwarded upstream.
//
// Core concepts:
//   - Validator: validates request bodies (structs carrying `validate` and
//     `sanitize` tags) and single route parameters.
//   - ValidationError: the collected rule violations, matched with
//     errors.Is(err, ErrValidationFailed).
//
// Rules are registered on a go-playground/validator instance:
//   - identifier: one upper-case letter followed by three digits (A001, C001).
//   - amount_min: a finite number of at least 0.01.
//   - amount_max: a number no greater than 1,000,000.
package validators

import "context"

// Validator defines the validation contract used by the transport layer.
type Validator interface {

	// Validate sanitises obj in place (when it is a pointer) and validates
	// it, optionally restricting validation to the named struct fields.
	Validate(context.Context, any, ...string) error

	// ValidateParam trims, validates and HTML-escapes a route identifier
	// parameter and returns the value to forward.
	ValidateParam(ctx context.Context, name, value string) (string, error)
}
