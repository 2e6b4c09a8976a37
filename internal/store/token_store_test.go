package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/solar-quote/internal/config"
	"github.com/MKhiriev/solar-quote/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisConfig(addr string) config.Redis {
	return config.Redis{Addr: addr, KeyPrefix: "test:"}
}

// ── memory ───────────────────────────────────────────────────────────────────

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTokenStore()

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, ErrTokenNotFound)

	token := models.CRMToken{Value: "tok", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, s.Save(ctx, token))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, got)

	require.NoError(t, s.Clear(ctx))
	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// clearing twice is fine
	assert.NoError(t, s.Clear(ctx))
}

// ── redis ────────────────────────────────────────────────────────────────────

func TestRedisTokenStore(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	s := NewRedisTokenStore(client, "sq:")

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, ErrTokenNotFound)

	expiresAt := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	require.NoError(t, s.Save(ctx, models.CRMToken{Value: "tok", ExpiresAt: expiresAt}))

	ttl := mr.TTL("sq:crm:token")
	assert.InDelta(t, (2 * time.Hour).Seconds(), ttl.Seconds(), 5)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Value)
	assert.True(t, expiresAt.Equal(got.ExpiresAt))

	mr.FastForward(2*time.Hour + time.Second)
	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRedisTokenStore_SaveExpiredClears(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	s := NewRedisTokenStore(client, "")

	require.NoError(t, s.Save(ctx, models.CRMToken{Value: "tok", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, s.Save(ctx, models.CRMToken{Value: "old", ExpiresAt: time.Now().Add(-time.Minute)}))

	assert.False(t, mr.Exists("crm:token"))
}

func TestRedisTokenStore_Clear(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	s := NewRedisTokenStore(client, "")

	require.NoError(t, s.Save(ctx, models.CRMToken{Value: "tok", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, s.Clear(ctx))
	assert.False(t, mr.Exists("crm:token"))
	assert.NoError(t, s.Clear(ctx))
}
