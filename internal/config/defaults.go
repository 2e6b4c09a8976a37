// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults: 5 results, 3 attempts with 1s then 2s backoff, a 5s
// lookup deadline, an unbounded process-lifetime cache and a 4h CRM token.
const (
	DefaultGeocoderBaseURL   = "https://api-adresse.data.gouv.fr"
	DefaultGeocoderUserAgent = "Simulateur Solaire/1.0"
	DefaultResultLimit       = 5
	DefaultLookupTimeout     = 5 * time.Second
	DefaultMaxAttempts       = 3
	DefaultBackoffBase       = 500 * time.Millisecond
	DefaultGeocoderRateLimit = 40

	DefaultCRMBaseURL        = "http://localhost:3001/api"
	DefaultCRMLoginURL       = "https://abienergie.icoll.fr/login"
	DefaultCRMTokenTTL       = 4 * time.Hour
	DefaultCRMRequestTimeout = 15 * time.Second

	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
	DefaultRedisKeyPrefix = "solar-quote:"
)

// Defaults returns the configuration layer merged last by the builder.
// Only fields still zero after env, flags and JSON are taken from it.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: DefaultLogLevel,
		},
		Geocoder: Geocoder{
			BaseURL:       DefaultGeocoderBaseURL,
			UserAgent:     DefaultGeocoderUserAgent,
			ResultLimit:   DefaultResultLimit,
			LookupTimeout: DefaultLookupTimeout,
			MaxAttempts:   DefaultMaxAttempts,
			BackoffBase:   DefaultBackoffBase,
			RateLimit:     DefaultGeocoderRateLimit,
		},
		CRM: CRM{
			BaseURL:        DefaultCRMBaseURL,
			LoginURL:       DefaultCRMLoginURL,
			TokenTTL:       DefaultCRMTokenTTL,
			RequestTimeout: DefaultCRMRequestTimeout,
		},
		Cache: Cache{
			Backend: BackendMemory,
		},
		Storage: Storage{
			Tokens: Tokens{Backend: BackendMemory},
			Redis:  Redis{KeyPrefix: DefaultRedisKeyPrefix},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
