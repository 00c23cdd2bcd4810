package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/vehiclerental/config"
	"github.com/Domenick1991/vehiclerental/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	routesTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, routesTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		routesTTL: routesTTL,
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetRoutes returns nil, nil on a cache miss.
func (c *RedisCache) GetRoutes(ctx context.Context) ([]domain.RoutePrice, error) {
	data, err := c.client.Get(ctx, routesKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var routes []domain.RoutePrice
	if err := json.Unmarshal(data, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

func (c *RedisCache) SetRoutes(ctx context.Context, routes []domain.RoutePrice) error {
	payload, err := json.Marshal(routes)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, routesKey(), payload, c.routesTTL).Err()
}

// AcquireSubmissionLock reports false if the same submission was seen within ttl.
func (c *RedisCache) AcquireSubmissionLock(ctx context.Context, fingerprint string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, submissionLockKey(fingerprint), "locked", ttl).Result()
}

func routesKey() string {
	return "cache:routes"
}

func submissionLockKey(fingerprint string) string {
	return "lock:booking-request:" + fingerprint
}
