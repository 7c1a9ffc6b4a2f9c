package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs per data class
const (
	TTLProperty   = 5 * time.Minute  // single listing detail
	TTLProperties = 30 * time.Second // search results, refreshed often
)

// Cache key prefixes
const (
	PrefixProperty   = "property:"
	PrefixProperties = "properties:"
)

// Service is the Redis cache service interface
type Service interface {
	// Property listing cache
	GetProperty(ctx context.Context, propertyID uint64) ([]byte, error)
	SetProperty(ctx context.Context, propertyID uint64, data interface{}) error
	InvalidateProperty(ctx context.Context, propertyID uint64) error

	// Property search result cache
	GetPropertyList(ctx context.Context, filterKey string) ([]byte, error)
	SetPropertyList(ctx context.Context, filterKey string, data interface{}) error
	InvalidatePropertyLists(ctx context.Context) error

	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a Redis-backed cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // no Redis, silently skip
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) GetProperty(ctx context.Context, propertyID uint64) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	return c.client.Get(ctx, fmt.Sprintf("%s%d", PrefixProperty, propertyID)).Bytes()
}

func (c *redisCache) SetProperty(ctx context.Context, propertyID uint64, data interface{}) error {
	return c.set(ctx, fmt.Sprintf("%s%d", PrefixProperty, propertyID), data, TTLProperty)
}

func (c *redisCache) InvalidateProperty(ctx context.Context, propertyID uint64) error {
	return c.delete(ctx, fmt.Sprintf("%s%d", PrefixProperty, propertyID))
}

func (c *redisCache) GetPropertyList(ctx context.Context, filterKey string) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	return c.client.Get(ctx, PrefixProperties+filterKey).Bytes()
}

func (c *redisCache) SetPropertyList(ctx context.Context, filterKey string, data interface{}) error {
	return c.set(ctx, PrefixProperties+filterKey, data, TTLProperties)
}

// InvalidatePropertyLists drops all cached search result pages.
// Uses SCAN rather than KEYS to avoid blocking Redis.
func (c *redisCache) InvalidatePropertyLists(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, PrefixProperties+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
