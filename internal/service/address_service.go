// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/solar-quote/internal/adapter"
	"github.com/MKhiriev/solar-quote/internal/config"
	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/internal/store"
	"github.com/MKhiriev/solar-quote/internal/utils"
	"github.com/MKhiriev/solar-quote/internal/validators"
	"github.com/MKhiriev/solar-quote/models"
	"golang.org/x/sync/singleflight"
)

// minQueryLength is the shortest query sent to the geocoder, in characters.
const minQueryLength = 3

type addressService struct {
	geocoder  adapter.GeocoderAdapter
	cache     store.SuggestionCache
	validator validators.Validator
	cfg       config.Geocoder

	inflight singleflight.Group

	logger *logger.Logger
}

// NewAddressService returns an [AddressService] backed by geocoder and
// cache. Zero values in cfg fall back to the package defaults of config.
func NewAddressService(geocoder adapter.GeocoderAdapter, cache store.SuggestionCache, cfg config.Geocoder, logger *logger.Logger) AddressService {
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = config.DefaultResultLimit
	}
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = config.DefaultLookupTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = config.DefaultMaxAttempts
	}
	if cfg.BackoffBase < 0 {
		cfg.BackoffBase = config.DefaultBackoffBase
	}

	return &addressService{
		geocoder:  geocoder,
		cache:     cache,
		validator: validators.NewAddressValidator(),
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *addressService) GetSuggestions(ctx context.Context, query string) []models.AddressFeature {
	return s.Lookup(ctx, query).Features
}

// Lookup implements [AddressService].
//
// Queries shorter than 3 characters, raw or normalized, are dropped without
// any cache or network activity. A cached key is served as is. Otherwise the
// geocoder is asked under a single deadline covering every attempt, the
// answer is filtered down to house numbers and streets, cached and returned.
// Concurrent lookups of the same uncached key share one fetch.
func (s *addressService) Lookup(ctx context.Context, query string) models.SuggestionResult {
	if query == "" || utf8.RuneCountInString(query) < minQueryLength {
		return models.SuggestionResult{Features: []models.AddressFeature{}, Outcome: models.OutcomeQueryTooShort}
	}

	key := normalizeQuery(query)
	if utf8.RuneCountInString(key) < minQueryLength {
		return models.SuggestionResult{Features: []models.AddressFeature{}, Outcome: models.OutcomeQueryTooShort}
	}

	log := s.logger.With().Str("func", "addressService.Lookup").Str("query", key).Logger()

	features, err := s.cache.Get(ctx, key)
	if err == nil {
		return models.SuggestionResult{Features: features, Outcome: models.OutcomeCacheHit}
	}
	if !errors.Is(err, store.ErrCacheMiss) {
		log.Warn().Err(err).Msg("suggestion cache read failed")
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.LookupTimeout)
	defer cancel()

	// The shared fetch must not die with the first caller; it gets its own
	// deadline of the same length. A canceled caller returns at once, but
	// attempts already issued for the key keep running until that deadline
	// so that other waiters still get the answer.
	sharedCtx := context.WithoutCancel(ctx)
	searchQuery := strings.TrimSpace(query)
	resultCh := s.inflight.DoChan(key, func() (any, error) {
		fetchCtx, fetchCancel := context.WithTimeout(sharedCtx, s.cfg.LookupTimeout)
		defer fetchCancel()
		return s.fetch(fetchCtx, key, searchQuery)
	})

	var result models.SuggestionResult
	select {
	case <-ctx.Done():
		result = failedLookup(ctx.Err())
	case res := <-resultCh:
		if res.Err != nil {
			result = failedLookup(res.Err)
		} else {
			result = models.SuggestionResult{Features: res.Val.([]models.AddressFeature), Outcome: models.OutcomeOK}
		}
	}

	if result.Failed() {
		log.Warn().Err(result.Err).Str("outcome", string(result.Outcome)).Msg("address lookup failed")
	}
	return result
}

// fetch asks the geocoder for query with retry, filters the answer and
// caches it under key.
func (s *addressService) fetch(ctx context.Context, key, query string) ([]models.AddressFeature, error) {
	var response models.SearchResponse
	err := utils.Retry(ctx, s.cfg.MaxAttempts, s.cfg.BackoffBase, isTransportError, func(ctx context.Context) error {
		var err error
		response, err = s.geocoder.Search(ctx, query, s.cfg.ResultLimit)
		if err != nil {
			s.logger.Debug().Err(err).Str("query", key).Msg("geocoder attempt failed")
		}
		return err
	})
	if err != nil {
		if isTransportError(err) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w: %w", ErrRetriesExhausted, err)
		}
		return nil, err
	}

	features, err := filterSuggestions(response.Features)
	if err != nil {
		return nil, err
	}

	if err = s.cache.Set(ctx, key, features); err != nil {
		s.logger.Warn().Err(err).Str("query", key).Msg("suggestion cache write failed")
	}
	return features, nil
}

func (s *addressService) ValidateAddress(address, postalCode, city string) bool {
	return s.CheckAddress(context.Background(), models.AddressValidationRequest{
		Address:    address,
		PostalCode: postalCode,
		City:       city,
	}) == nil
}

func (s *addressService) CheckAddress(ctx context.Context, req models.AddressValidationRequest) error {
	return s.validator.Validate(ctx, req)
}

func (s *addressService) FallbackCoordinates(city string) (models.Coordinates, bool) {
	return FallbackCoordinates(city)
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// filterSuggestions decodes the raw "features" member and keeps house
// numbers and streets in their original order. The result is never nil.
func filterSuggestions(raw json.RawMessage) ([]models.AddressFeature, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, ErrMalformedResponse
	}

	var all []models.AddressFeature
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	features := make([]models.AddressFeature, 0, len(all))
	for _, f := range all {
		if f.IsSuggestion() {
			features = append(features, f)
		}
	}
	return features, nil
}

// isTransportError reports whether err is worth another attempt. Upstream
// answers (any status, malformed bodies) and cancellation are final.
func isTransportError(err error) bool {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, adapter.ErrUpstreamStatus):
		return false
	case errors.Is(err, adapter.ErrMalformedResponse), errors.Is(err, ErrMalformedResponse):
		return false
	default:
		return true
	}
}

func failedLookup(err error) models.SuggestionResult {
	return models.SuggestionResult{
		Features: []models.AddressFeature{},
		Outcome:  classifyLookupError(err),
		Err:      err,
	}
}

func classifyLookupError(err error) models.LookupOutcome {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.OutcomeTimeout
	case errors.Is(err, context.Canceled):
		return models.OutcomeCanceled
	case errors.Is(err, adapter.ErrUpstreamStatus):
		return models.OutcomeUpstreamStatus
	case errors.Is(err, ErrMalformedResponse), errors.Is(err, adapter.ErrMalformedResponse):
		return models.OutcomeMalformedResponse
	default:
		return models.OutcomeTransportError
	}
}
