// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported backends for the suggestion cache and the CRM token store.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// StructuredConfig is the top-level configuration container for the
// solar-quote service. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as version and log level.
	App App `envPrefix:"APP_"`

	// Geocoder holds the address autocomplete upstream and its resilience
	// parameters.
	Geocoder Geocoder `envPrefix:"GEOCODER_"`

	// CRM holds the quoting CRM endpoint and credentials.
	CRM CRM `envPrefix:"CRM_"`

	// Cache holds the address suggestion cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Storage holds the persistence backends (token store, redis).
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Geocoder configures the address suggestion client.
type Geocoder struct {
	// BaseURL is the geocoder root, without the /search/ path.
	// Env: GEOCODER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// UserAgent is sent with every geocoder request.
	// Env: GEOCODER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// ResultLimit is the number of features requested per search.
	// Env: GEOCODER_RESULT_LIMIT
	ResultLimit int `env:"RESULT_LIMIT"`

	// LookupTimeout bounds a whole lookup, all retry attempts included.
	// Env: GEOCODER_LOOKUP_TIMEOUT
	LookupTimeout time.Duration `env:"LOOKUP_TIMEOUT"`

	// MaxAttempts is the total number of network attempts per lookup.
	// Env: GEOCODER_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// BackoffBase is the unit of the exponential backoff: attempt i (i > 0)
	// waits BackoffBase * 2^i before being issued.
	// Env: GEOCODER_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`

	// RateLimit caps outbound searches per second across all lookups. The
	// public geocoder allows 50 per second and per IP.
	// Env: GEOCODER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`
}

// CRM configures the quoting CRM client.
type CRM struct {
	// BaseURL is the CRM API root (e.g. "http://localhost:3001/api").
	// Env: CRM_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// LoginURL is the CRM web login page used for client import redirects.
	// Env: CRM_LOGIN_URL
	LoginURL string `env:"LOGIN_URL"`

	// Username is the CRM API account.
	// Env: CRM_USERNAME
	Username string `env:"USERNAME"`

	// Password is the CRM API account secret. Must be kept confidential.
	// Env: CRM_PASSWORD
	Password string `env:"PASSWORD"`

	// TokenTTL is how long an obtained bearer token is reused.
	// Env: CRM_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`

	// RequestTimeout bounds every single CRM HTTP call.
	// Env: CRM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Cache configures the address suggestion cache.
type Cache struct {
	// Backend is "memory" or "redis".
	// Env: CACHE_BACKEND
	Backend string `env:"BACKEND"`

	// MaxEntries bounds the memory cache; 0 means unbounded.
	// Env: CACHE_MAX_ENTRIES
	MaxEntries int `env:"MAX_ENTRIES"`

	// TTL expires entries after the given duration; 0 means never.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Tokens configures where the CRM bearer token is kept.
	Tokens Tokens `envPrefix:"TOKENS_"`

	// Redis holds the connection settings shared by redis-backed stores.
	Redis Redis `envPrefix:"REDIS_"`
}

// Tokens configures the CRM token store.
type Tokens struct {
	// Backend is "memory", "redis", "sqlite" or "postgres".
	// Env: STORAGE_TOKENS_BACKEND
	Backend string `env:"BACKEND"`

	// DSN is the database connection string for sql backends.
	// Env: STORAGE_TOKENS_DSN
	DSN string `env:"DSN"`
}

// Redis holds redis connection settings.
type Redis struct {
	// Addr is the "host:port" of the redis server.
	// Env: STORAGE_REDIS_ADDR
	Addr string `env:"ADDR"`

	// Password is the optional redis password.
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the redis logical database index.
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`

	// KeyPrefix namespaces every key written by the service.
	// Env: STORAGE_REDIS_KEY_PREFIX
	KeyPrefix string `env:"KEY_PREFIX"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes. A zero
// interval disables the corresponding worker.
type Workers struct {
	// CacheJanitorInterval is how often expired suggestions are purged.
	// Env: WORKERS_CACHE_JANITOR_INTERVAL
	CacheJanitorInterval time.Duration `env:"CACHE_JANITOR_INTERVAL"`

	// TokenRefreshInterval is how often the CRM token is warmed up.
	// Env: WORKERS_TOKEN_REFRESH_INTERVAL
	TokenRefreshInterval time.Duration `env:"TOKEN_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source providing a non-zero field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
