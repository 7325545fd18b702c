// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// configuration carries no HTTP address.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	errNoServices = errors.New("services are required to build handlers")
)
