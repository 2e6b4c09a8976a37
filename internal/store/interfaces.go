// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layer of solar-quote: the address
// suggestion cache and the CRM bearer token store, each with an in-memory
// implementation and shared backends (redis, sqlite, postgres).
package store

import (
	"context"

	"github.com/MKhiriev/solar-quote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SuggestionCache maps a normalized address query to the filtered features
// the geocoder returned for it. Only successful lookups are ever stored.
type SuggestionCache interface {
	// Get returns the features cached for key, or [ErrCacheMiss].
	Get(ctx context.Context, key string) ([]models.AddressFeature, error)
	// Set stores features under key, replacing any previous value.
	Set(ctx context.Context, key string, features []models.AddressFeature) error
}

// Purger is implemented by caches that need explicit removal of expired
// entries. Backends with native expiry (redis) do not implement it.
type Purger interface {
	// PurgeExpired drops every expired entry and returns how many were
	// removed.
	PurgeExpired(ctx context.Context) (int, error)
}

// TokenStore keeps the single CRM bearer token shared by all requests.
type TokenStore interface {
	// Load returns the stored token, or [ErrTokenNotFound]. The token may be
	// expired; callers check [models.CRMToken.Valid].
	Load(ctx context.Context) (models.CRMToken, error)
	// Save replaces the stored token.
	Save(ctx context.Context, token models.CRMToken) error
	// Clear removes the stored token. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
