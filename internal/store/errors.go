package store

import "errors"

// Sentinel errors returned by store methods to signal well-known conditions.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrCacheMiss is returned by [SuggestionCache.Get] when nothing usable is
	// cached for the key (absent or expired).
	ErrCacheMiss = errors.New("suggestion cache miss")

	// ErrTokenNotFound is returned by [TokenStore.Load] when no token is
	// stored.
	ErrTokenNotFound = errors.New("crm token not found")
)

// Low-level operation errors. These are returned (or wrapped) when a backend
// operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails, retries included.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingValue is returned when a value cannot be serialized for, or
	// deserialized from, a key-value backend.
	ErrEncodingValue = errors.New("failed to encode cached value")

	// ErrUnknownBackend is returned by [NewStorages] for an unsupported
	// backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)
