// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LookupOutcome classifies how an address lookup terminated.
type LookupOutcome string

const (
	// OutcomeOK means the geocoder answered and the filtered result was cached.
	OutcomeOK LookupOutcome = "ok"
	// OutcomeCacheHit means the result was served from the suggestion cache.
	OutcomeCacheHit LookupOutcome = "cache_hit"
	// OutcomeQueryTooShort means the query was below the minimum length and
	// nothing was looked up.
	OutcomeQueryTooShort LookupOutcome = "query_too_short"
	// OutcomeTimeout means the lookup deadline fired before a terminal answer.
	OutcomeTimeout LookupOutcome = "timeout"
	// OutcomeCanceled means the caller canceled the lookup.
	OutcomeCanceled LookupOutcome = "canceled"
	// OutcomeTransportError means every attempt failed at the transport level.
	OutcomeTransportError LookupOutcome = "transport_error"
	// OutcomeUpstreamStatus means the geocoder answered with a non-2xx status.
	OutcomeUpstreamStatus LookupOutcome = "upstream_status"
	// OutcomeMalformedResponse means the geocoder payload had no features array.
	OutcomeMalformedResponse LookupOutcome = "malformed_response"
)

// SuggestionResult is the internal view of a lookup. Features is always
// non-nil; Err is set for every failed outcome.
type SuggestionResult struct {
	Features []AddressFeature
	Outcome  LookupOutcome
	Err      error
}

// Failed reports whether the lookup ended on an error path.
func (r SuggestionResult) Failed() bool {
	return r.Err != nil
}
