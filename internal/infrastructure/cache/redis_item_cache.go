package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"maintenance_contracts/internal/domain/entities"
	"maintenance_contracts/internal/infrastructure/config"
	"maintenance_contracts/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const itemKeyPrefix = "service_item:"

// NewRedisClient returns nil when REDIS_ADDR is not configured.
func NewRedisClient(cfg config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// RedisItemCache stores catalog items as JSON under service_item:<code>.
type RedisItemCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.IItemCache = (*RedisItemCache)(nil)

func NewRedisItemCache(client redis.Cmdable, ttl time.Duration) *RedisItemCache {
	return &RedisItemCache{client: client, ttl: ttl}
}

func (c *RedisItemCache) Get(ctx context.Context, code string) (entities.Item, bool, error) {
	raw, err := c.client.Get(ctx, itemKey(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Item{}, false, nil
	}
	if err != nil {
		return entities.Item{}, false, err
	}
	var item entities.Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return entities.Item{}, false, err
	}
	return item, true, nil
}

func (c *RedisItemCache) Set(ctx context.Context, item entities.Item) error {
	b, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, itemKey(item.ItemCode), b, c.ttl).Err()
}

func (c *RedisItemCache) Delete(ctx context.Context, code string) error {
	return c.client.Del(ctx, itemKey(code)).Err()
}

func itemKey(code string) string {
	return itemKeyPrefix + code
}
