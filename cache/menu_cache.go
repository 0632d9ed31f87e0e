package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"sandwich-service/models"

	"github.com/redis/go-redis/v9"
)

const (
	versionKey      = "menu:version"
	sandwichListKey = "menu:sandwiches:v%d"
)

// MenuCache caches the sandwich list in Redis. Writers bump menu:version
// instead of deleting keys; stale lists expire through their TTL.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{client: client, ttl: ttl}
}

func (c *MenuCache) version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, versionKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}

// GetSandwiches returns the cached list and the menu version it was looked up
// under. ok is false on a miss; the version is still valid then and must be
// handed back to SetSandwiches.
func (c *MenuCache) GetSandwiches(ctx context.Context) ([]models.Sandwich, int64, bool, error) {
	ver, err := c.version(ctx)
	if err != nil {
		return nil, 0, false, fmt.Errorf("read menu version: %w", err)
	}

	raw, err := c.client.Get(ctx, fmt.Sprintf(sandwichListKey, ver)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ver, false, nil
	}
	if err != nil {
		return nil, ver, false, fmt.Errorf("read sandwich list: %w", err)
	}

	var sandwiches []models.Sandwich
	if err := json.Unmarshal(raw, &sandwiches); err != nil {
		return nil, ver, false, fmt.Errorf("decode sandwich list: %w", err)
	}
	return sandwiches, ver, true, nil
}

// SetSandwiches stores a list read from the database under the version seen
// before that read. If a writer invalidated the menu in between, the list
// lands under a retired key and is never served.
func (c *MenuCache) SetSandwiches(ctx context.Context, ver int64, sandwiches []models.Sandwich) error {
	if sandwiches == nil {
		sandwiches = []models.Sandwich{}
	}
	raw, err := json.Marshal(sandwiches)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(sandwichListKey, ver), raw, c.ttl).Err()
}

// Invalidate makes every previously cached list unreachable.
func (c *MenuCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, versionKey).Err()
}
