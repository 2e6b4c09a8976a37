package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/solar-quote/internal/config"
	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups the backends selected by configuration.
type Storages struct {
	SuggestionCache SuggestionCache
	TokenStore      TokenStore

	closers []io.Closer
}

// NewStorages opens every backend required by cfg. A redis client is shared
// by the cache and the token store when both use redis. SQL token stores are
// migrated before use.
//
// On error, anything already opened is closed.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	var redisClient *redis.Client
	getRedis := func() (*redis.Client, error) {
		if redisClient != nil {
			return redisClient, nil
		}
		client, err := NewRedisClient(ctx, cfg.Storage.Redis, log)
		if err != nil {
			return nil, err
		}
		redisClient = client
		s.closers = append(s.closers, client)
		return client, nil
	}

	switch cfg.Cache.Backend {
	case config.BackendMemory, "":
		s.SuggestionCache = NewMemorySuggestionCache(cfg.Cache.MaxEntries, cfg.Cache.TTL)
	case config.BackendRedis:
		client, err := getRedis()
		if err != nil {
			return nil, s.closeOnError(err)
		}
		s.SuggestionCache = NewRedisSuggestionCache(client, cfg.Storage.Redis.KeyPrefix, cfg.Cache.TTL, log)
	default:
		return nil, s.closeOnError(fmt.Errorf("%w: cache %q", ErrUnknownBackend, cfg.Cache.Backend))
	}

	switch cfg.Storage.Tokens.Backend {
	case config.BackendMemory, "":
		s.TokenStore = NewMemoryTokenStore()
	case config.BackendRedis:
		client, err := getRedis()
		if err != nil {
			return nil, s.closeOnError(err)
		}
		s.TokenStore = NewRedisTokenStore(client, cfg.Storage.Redis.KeyPrefix)
	case config.BackendSQLite, config.BackendPostgres:
		connect := NewConnectSQLite
		if cfg.Storage.Tokens.Backend == config.BackendPostgres {
			connect = NewConnectPostgres
		}

		db, err := connect(ctx, cfg.Storage.Tokens, log)
		if err != nil {
			return nil, s.closeOnError(err)
		}
		s.closers = append(s.closers, db)

		if err = db.Migrate(); err != nil {
			return nil, s.closeOnError(err)
		}
		s.TokenStore = NewSQLTokenStore(db, log)
	default:
		return nil, s.closeOnError(fmt.Errorf("%w: tokens %q", ErrUnknownBackend, cfg.Storage.Tokens.Backend))
	}

	return s, nil
}

// Close releases every connection opened by [NewStorages].
func (s *Storages) Close() error {
	var errs error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = errors.Join(errs, s.closers[i].Close())
	}
	s.closers = nil
	return errs
}

func (s *Storages) closeOnError(err error) error {
	return errors.Join(err, s.Close())
}
