package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/solar-quote/models"
	"github.com/redis/go-redis/v9"
)

const crmTokenKey = "crm:token"

// redisTokenStore shares the CRM token between service instances. The redis
// key expires together with the token.
type redisTokenStore struct {
	client *redis.Client
	key    string
	now    func() time.Time
}

// NewRedisTokenStore returns a [TokenStore] backed by client, with its key
// namespaced by keyPrefix.
func NewRedisTokenStore(client *redis.Client, keyPrefix string) TokenStore {
	return &redisTokenStore{
		client: client,
		key:    keyPrefix + crmTokenKey,
		now:    time.Now,
	}
}

func (s *redisTokenStore) Load(ctx context.Context) (models.CRMToken, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.CRMToken{}, ErrTokenNotFound
	}
	if err != nil {
		return models.CRMToken{}, fmt.Errorf("redis get crm token: %w", err)
	}

	var token models.CRMToken
	if err = json.Unmarshal(raw, &token); err != nil {
		return models.CRMToken{}, fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}
	return token, nil
}

func (s *redisTokenStore) Save(ctx context.Context, token models.CRMToken) error {
	ttl := token.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return s.Clear(ctx)
	}

	raw, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	if err = s.client.Set(ctx, s.key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set crm token: %w", err)
	}
	return nil
}

func (s *redisTokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis del crm token: %w", err)
	}
	return nil
}
