package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/solar-quote/internal/logger"
	"github.com/MKhiriev/solar-quote/models"
	"github.com/redis/go-redis/v9"
)

const suggestionKeySpace = "suggestions:"

// redisSuggestionCache shares suggestions between service instances. Values
// are JSON-encoded feature arrays; expiry is delegated to redis.
type redisSuggestionCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration

	logger *logger.Logger
}

// NewRedisSuggestionCache returns a [SuggestionCache] backed by client. Keys
// are namespaced with keyPrefix. A zero ttl stores entries without expiry.
func NewRedisSuggestionCache(client *redis.Client, keyPrefix string, ttl time.Duration, logger *logger.Logger) SuggestionCache {
	return &redisSuggestionCache{
		client:    client,
		keyPrefix: keyPrefix + suggestionKeySpace,
		ttl:       ttl,
		logger:    logger,
	}
}

func (c *redisSuggestionCache) Get(ctx context.Context, key string) ([]models.AddressFeature, error) {
	raw, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}

	var features []models.AddressFeature
	if err = json.Unmarshal(raw, &features); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("dropping undecodable cached suggestions")
		_ = c.client.Del(ctx, c.keyPrefix+key).Err()
		return nil, ErrCacheMiss
	}
	if features == nil {
		features = []models.AddressFeature{}
	}

	return features, nil
}

func (c *redisSuggestionCache) Set(ctx context.Context, key string, features []models.AddressFeature) error {
	if features == nil {
		features = []models.AddressFeature{}
	}

	raw, err := json.Marshal(features)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	if err = c.client.Set(ctx, c.keyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}
