package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"efectivio/internal/infrastructure/config"
	"efectivio/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// RedisCache stores JSON encoded values in redis.
type RedisCache struct {
	client *redis.Client
	prefix string
}

var _ interfaces.ICache = (*RedisCache)(nil)

// New returns a redis cache when one is configured and a no-op cache otherwise.
func New(ctx context.Context, cfg config.CacheConfig) (interfaces.ICache, error) {
	if !cfg.Enabled() {
		log.Printf("[cache] redis not configured, caching disabled")
		return NoopCache{}, nil
	}

	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       0,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	log.Printf("[cache] redis connected addr=%s:%s", cfg.Host, cfg.Port)
	return NewRedisCache(c), nil
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, prefix: "efectivio:"}
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	entry, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+key, entry, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}

// NoopCache never holds anything.
type NoopCache struct{}

var _ interfaces.ICache = NoopCache{}

func (NoopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NoopCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (NoopCache) Delete(context.Context, string) error { return nil }
