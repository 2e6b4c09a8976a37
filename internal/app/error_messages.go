// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// solar-quote HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when query parameters or the
	// request body fail basic checks.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidClientData is returned with per-field messages when the
	// quote request is rejected before reaching the CRM.
	MsgInvalidClientData = "invalid client data"

	// MsgCRMUnavailable is returned when the CRM refused or failed a call.
	MsgCRMUnavailable = "crm unavailable"

	// MsgUpstreamTimeout is returned when an upstream service did not answer
	// before the request deadline.
	MsgUpstreamTimeout = "upstream timeout"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
