package storage

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"shoplist/models"
)

// CachedRepository decorates a Repository with a Redis read-through
// cache on Get. Mutations invalidate the cached entry; List and Create
// always hit the store, which stays the sole source of truth.
type CachedRepository struct {
	inner  Repository
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

var _ Repository = (*CachedRepository)(nil)

// NewCachedRepository wraps inner with an item-by-ID cache.
func NewCachedRepository(inner Repository, client *redis.Client, ttl time.Duration, logger *log.Logger) *CachedRepository {
	return &CachedRepository{inner: inner, client: client, ttl: ttl, logger: logger}
}

func cacheKey(id string) string {
	return "item:" + id
}

func (c *CachedRepository) List(ctx context.Context) ([]models.Item, error) {
	return c.inner.List(ctx)
}

func (c *CachedRepository) Get(ctx context.Context, id string) (models.Item, error) {
	val, err := c.client.Get(ctx, cacheKey(id)).Result()
	if err == nil {
		var item models.Item
		if err := json.Unmarshal([]byte(val), &item); err == nil {
			return item, nil
		}
		// Unreadable cache entry; fall through to the store.
	} else if err != redis.Nil {
		c.logger.Printf("cache get %s: %v", id, err)
	}

	item, err := c.inner.Get(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	if payload, err := json.Marshal(item); err == nil {
		c.client.Set(ctx, cacheKey(id), payload, c.ttl)
	}
	return item, nil
}

func (c *CachedRepository) Create(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	return c.inner.Create(ctx, req)
}

func (c *CachedRepository) Update(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error) {
	item, err := c.inner.Update(ctx, id, patch)
	if err != nil {
		return models.Item{}, err
	}
	c.invalidate(ctx, id)
	return item, nil
}

func (c *CachedRepository) Toggle(ctx context.Context, id string) (models.Item, error) {
	item, err := c.inner.Toggle(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	c.invalidate(ctx, id)
	return item, nil
}

func (c *CachedRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *CachedRepository) invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		c.logger.Printf("cache invalidate %s: %v", id, err)
	}
}
