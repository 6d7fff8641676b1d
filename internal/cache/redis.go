package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/smallbiznis/stockbook/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the optional redis read cache.
var Module = fx.Provide(New)

// RedisCache is a best-effort byte cache. A nil *RedisCache is valid and
// behaves as a cache that never hits, so callers need no configuration
// awareness.
type RedisCache struct {
	client *redis.Client
	log    *zap.Logger
}

// New returns nil when no redis address is configured.
func New(cfg config.Config, log *zap.Logger) *RedisCache {
	if cfg.RedisAddr == "" {
		return nil
	}
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}),
		log: log.Named("cache.redis"),
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return value, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
