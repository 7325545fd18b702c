// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// gateway handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of a request. Upstream
// failures are always reported with one of the fixed MsgCBS* messages; the
// upstream's own error text only goes to the server log.
package app

const (
	// MsgValidationFailed is the "error" label of every 400 validation
	// envelope.
	MsgValidationFailed = "Validation failed"

	// MsgInternalServerError is the "error" label written when a handler
	// panics.
	MsgInternalServerError = "Internal server error"

	// MsgUnexpectedError is the message paired with MsgInternalServerError.
	MsgUnexpectedError = "An unexpected error occurred"

	// MsgNotFound is the "error" label for unknown routes.
	MsgNotFound = "Not found"

	// MsgEndpointDoesNotExist is the message for unknown routes.
	MsgEndpointDoesNotExist = "The requested endpoint does not exist"

	// MsgCORSViolation is the "error" label for requests from a
	// disallowed origin.
	MsgCORSViolation = "CORS policy violation"

	// MsgOriginNotAllowed is the message for requests from a disallowed
	// origin.
	MsgOriginNotAllowed = "origin is not allowed"

	// MsgInvalidGzipBody is the message for a request declaring a gzip body
	// that cannot be inflated.
	MsgInvalidGzipBody = "Request body is not valid gzip data"

	// MsgPayloadTooLarge is the "error" label for bodies over the size cap.
	MsgPayloadTooLarge = "Payload too large"

	// MsgBodyLimitExceeded is the message paired with MsgPayloadTooLarge.
	MsgBodyLimitExceeded = "Request body must not exceed 100kb"
)

// Upstream failure messages.
const (
	MsgCBSError       = "The core banking system returned an error"
	MsgCBSBadRequest  = "The core banking system rejected the request"
	MsgCBSNotFound    = "The requested resource was not found upstream"
	MsgCBSConflict    = "The request conflicts with the current state of the resource"
	MsgCBSUnprocessed = "The core banking system could not process the request"
	MsgCBSTimeout     = "The core banking system did not respond in time"
	MsgCBSUnavailable = "The core banking system is unavailable"
	MsgCBSInternal    = "An unexpected error occurred while contacting the core banking system"
)
