// Package cache keeps the public item list in Redis so GET /items does not
// hit storage on every request.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/whattowear/internal/server/models"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// The list lives under a key derived from a generation counter. Invalidate
// bumps the counter, so a load that started before a write can only fill
// the old generation's key, which no later reader looks at.
const (
	keyItemsGen    = "wtwr:items:gen"
	keyItemsPrefix = "wtwr:items:"
)

// loadTimeout bounds a shared load, which does not follow any single
// caller's context.
const loadTimeout = 10 * time.Second

// Commander is the subset of *redis.Client the cache uses.
type Commander interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// ItemsCache caches the full item list. Concurrent misses share one load.
type ItemsCache struct {
	rdb Commander
	ttl time.Duration
	sf  singleflight.Group
}

// NewItemsCache returns a new ItemsCache.
func NewItemsCache(rdb Commander, ttl time.Duration) *ItemsCache {
	return &ItemsCache{rdb: rdb, ttl: ttl}
}

// NewRedisClient connects to addr and pings it.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// GetOrLoad returns the cached list, or calls load and caches its result.
// A Redis failure on read is treated as a miss; a failure on write is
// ignored, the loaded list is still returned. When the generation cannot be
// read at all the loaded list is not cached.
//
// Concurrent misses share one load, and that load runs detached from the
// caller that started it so one cancelled request does not fail the others.
func (c *ItemsCache) GetOrLoad(ctx context.Context, load func(context.Context) ([]models.ClothingItem, error)) ([]models.ClothingItem, error) {
	gen, genErr := c.generation(ctx)
	key := keyItemsPrefix + gen
	if genErr == nil {
		if list, ok := c.get(ctx, key); ok {
			return list, nil
		}
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		list, err := load(lctx)
		if err != nil {
			return nil, err
		}
		if genErr == nil {
			_ = c.set(lctx, key, list)
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}

	// every caller gets its own copy of the shared result
	shared := v.([]models.ClothingItem)
	out := make([]models.ClothingItem, len(shared))
	for i, it := range shared {
		it.Likes = append([]string{}, it.Likes...)
		out[i] = it
	}
	return out, nil
}

// Invalidate moves readers to a new generation (cache invalidation on write).
func (c *ItemsCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, keyItemsGen).Err()
}

// generation returns the current counter, "0" before the first write.
func (c *ItemsCache) generation(ctx context.Context) (string, error) {
	gen, err := c.rdb.Get(ctx, keyItemsGen).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	return gen, err
}

func (c *ItemsCache) get(ctx context.Context, key string) ([]models.ClothingItem, bool) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var list []models.ClothingItem
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, false
	}
	return list, true
}

func (c *ItemsCache) set(ctx context.Context, key string, list []models.ClothingItem) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}
