// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := validateURL(cfg.Geocoder.BaseURL); err != nil {
		return fmt.Errorf("%w: base url: %w", ErrInvalidGeocoderConfigs, err)
	}
	if cfg.Geocoder.MaxAttempts < 1 || cfg.Geocoder.LookupTimeout <= 0 || cfg.Geocoder.BackoffBase < 0 || cfg.Geocoder.RateLimit < 0 {
		return fmt.Errorf("%w: attempts, timeout and backoff must be positive", ErrInvalidGeocoderConfigs)
	}

	if err := validateURL(cfg.CRM.BaseURL); err != nil {
		return fmt.Errorf("%w: base url: %w", ErrInvalidCRMConfigs, err)
	}

	switch cfg.Cache.Backend {
	case BackendMemory:
	case BackendRedis:
		if cfg.Storage.Redis.Addr == "" {
			return fmt.Errorf("%w: redis cache requires a redis address", ErrInvalidCacheConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidCacheConfigs, cfg.Cache.Backend)
	}
	if cfg.Cache.MaxEntries < 0 || cfg.Cache.TTL < 0 {
		return fmt.Errorf("%w: negative bounds", ErrInvalidCacheConfigs)
	}

	switch cfg.Storage.Tokens.Backend {
	case BackendMemory:
	case BackendRedis:
		if cfg.Storage.Redis.Addr == "" {
			return fmt.Errorf("%w: redis token store requires a redis address", ErrInvalidStorageConfigs)
		}
	case BackendSQLite, BackendPostgres:
		if cfg.Storage.Tokens.DSN == "" {
			return fmt.Errorf("%w: %s token store requires a dsn", ErrInvalidStorageConfigs, cfg.Storage.Tokens.Backend)
		}
	default:
		return fmt.Errorf("%w: unknown token backend %q", ErrInvalidStorageConfigs, cfg.Storage.Tokens.Backend)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.CacheJanitorInterval < 0 || cfg.Workers.TokenRefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("address must include host and scheme")
	}
	return nil
}
