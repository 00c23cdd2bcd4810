package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/vehiclerental/config"
	"github.com/Domenick1991/vehiclerental/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, routesTTL time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewRedisCache(config.RedisConfig{Addr: mr.Addr()}, routesTTL)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"}, time.Minute)
	defer c.Close()

	assert.NotNil(t, c.client)
	assert.Equal(t, time.Minute, c.routesTTL)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "cache:routes", routesKey())
	assert.Equal(t, "lock:booking-request:abc123", submissionLockKey("abc123"))
}

func TestRedisCache_GetRoutesMiss(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	routes, err := c.GetRoutes(context.Background())
	require.NoError(t, err)
	assert.Nil(t, routes)
}

func TestRedisCache_SetThenGetRoutes(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	want := []domain.RoutePrice{
		{Route: "Trinco to Kandy", VanPriceLKR: 30000, CarPriceLKR: 24000},
		{Route: "City Tour", VanPriceLKR: 18000, CarPriceLKR: 17000},
	}

	require.NoError(t, c.SetRoutes(ctx, want))

	got, err := c.GetRoutes(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, time.Minute, mr.TTL(routesKey()))

	mr.FastForward(time.Minute)
	got, err = c.GetRoutes(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_GetRoutesCorruptPayload(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set(routesKey(), "not json"))

	_, err := c.GetRoutes(context.Background())
	assert.Error(t, err)
}

func TestRedisCache_AcquireSubmissionLock(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	ttl := 30 * time.Second

	ok, err := c.AcquireSubmissionLock(ctx, "fp-1", ttl)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.AcquireSubmissionLock(ctx, "fp-1", ttl)
	require.NoError(t, err)
	assert.False(t, ok, "same fingerprint must stay locked until the TTL expires")

	ok, err = c.AcquireSubmissionLock(ctx, "fp-2", ttl)
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(ttl - time.Second)
	ok, err = c.AcquireSubmissionLock(ctx, "fp-1", ttl)
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(time.Second)
	ok, err = c.AcquireSubmissionLock(ctx, "fp-1", ttl)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisCache_ServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	c := NewRedisCache(config.RedisConfig{Addr: mr.Addr()}, time.Minute)
	defer c.Close()
	mr.Close()
	ctx := context.Background()

	_, err = c.GetRoutes(ctx)
	assert.Error(t, err)

	_, err = c.AcquireSubmissionLock(ctx, "fp-1", time.Second)
	assert.Error(t, err)
}
