package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidGeocoderConfigs indicates an unusable geocoder URL or retry
	// parameters.
	ErrInvalidGeocoderConfigs = errors.New("invalid geocoder configuration")
	// ErrInvalidCRMConfigs indicates an unusable CRM endpoint.
	ErrInvalidCRMConfigs = errors.New("invalid crm configuration")
	// ErrInvalidCacheConfigs indicates an unknown cache backend or negative
	// bounds.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidStorageConfigs indicates invalid token storage settings
	// (for example, a sql backend without DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
