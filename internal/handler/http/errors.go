// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errPanicRecovered wraps panic values logged by withRecovery.
var errPanicRecovered = errors.New("panic recovered")
