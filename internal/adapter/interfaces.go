// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the upstream services used by solar-quote: the national address geocoder
// and the quoting CRM.
//
// [GeocoderAdapter] and [CRMAdapter] decouple the service layer from the
// underlying protocol. Both ship as HTTP/REST implementations built on resty
// ([NewHTTPGeocoderAdapter], [NewHTTPCRMAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrUpstreamStatus] for every
// non-2xx answer).
package adapter

import (
	"context"

	"github.com/MKhiriev/solar-quote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// GeocoderAdapter performs address autocomplete searches.
type GeocoderAdapter interface {
	// Search issues a single autocomplete search for query, asking for at
	// most limit features. It performs no retry and no caching.
	//
	// Returns an error wrapping [ErrUpstreamStatus] when the geocoder answers
	// with a non-2xx status, [ErrMalformedResponse] when the body is not a
	// JSON object, or the transport error (including context cancellation)
	// otherwise.
	Search(ctx context.Context, query string, limit int) (models.SearchResponse, error)
}

// CRMAdapter talks to the quoting CRM REST API. Every CRM response wraps its
// payload as {"response": {"data": ...}}; implementations unwrap it.
type CRMAdapter interface {
	// Authenticate exchanges credentials for a bearer token. An empty token
	// with a nil error means the CRM answered 2xx without a token.
	Authenticate(ctx context.Context, credentials models.CRMCredentials) (string, error)

	// CreateClient registers a single client and returns the identifier the
	// CRM assigned to it, or 0 when the CRM did not return one.
	CreateClient(ctx context.Context, token string, client models.CRMClient) (int64, error)

	// CreateQuote creates a quote for an existing client. Members of the
	// returned data are nil when the CRM did not return them.
	CreateQuote(ctx context.Context, token string, quote models.CRMQuote) (models.CRMQuoteData, error)
}
