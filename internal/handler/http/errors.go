// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while reading request parameters. Callers can
// match against them with [errors.Is].
var (
	// ErrMissingQueryParam is returned when a required query parameter is
	// absent or empty.
	ErrMissingQueryParam = errors.New("missing query parameter")

	// ErrInvalidQueryParam is returned when a query parameter cannot be
	// parsed into the expected type.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
