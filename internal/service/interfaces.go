// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of solar-quote: address
// suggestions with caching, retry and graceful degradation, manual address
// validation, and the CRM client/quote workflow.
package service

import (
	"context"

	"github.com/MKhiriev/solar-quote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AddressService answers address autocomplete queries and checks manually
// entered addresses.
type AddressService interface {
	// GetSuggestions returns the house number and street suggestions for
	// query. It never fails: every error degrades to an empty, non-nil slice.
	GetSuggestions(ctx context.Context, query string) []models.AddressFeature
	// Lookup runs the same algorithm as GetSuggestions and also reports how
	// the lookup ended.
	Lookup(ctx context.Context, query string) models.SuggestionResult
	// ValidateAddress reports whether the triple passes the manual entry
	// rules. It touches neither the network nor the cache.
	ValidateAddress(address, postalCode, city string) bool
	// CheckAddress validates req and returns validators.FieldErrors naming
	// every invalid field.
	CheckAddress(ctx context.Context, req models.AddressValidationRequest) error
	// FallbackCoordinates returns the coordinates of a known city. Unknown
	// cities get the nationwide default and ok == false.
	FallbackCoordinates(city string) (coordinates models.Coordinates, ok bool)
}

// QuoteService drives the CRM: authentication with a cached token, client
// registration and quote creation.
type QuoteService interface {
	// GetToken returns a usable bearer token, authenticating when the cached
	// one is missing or expired.
	GetToken(ctx context.Context) (string, error)
	// TestConnection reports whether a token can be obtained.
	TestConnection(ctx context.Context) bool
	// RegisterClientAndCreateQuote creates the client then its quote.
	RegisterClientAndCreateQuote(ctx context.Context, data models.ClientData) (models.QuoteResult, error)
	// LoginURL builds the CRM web URL importing the given client.
	LoginURL(clientID int64, commercialID string, quoteID *int64) string
	// AuthURL returns the CRM authentication endpoint.
	AuthURL() string
}

// AppInfoService exposes build metadata of the running service.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
