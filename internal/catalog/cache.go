package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/carrierdesk/backend-carrier/internal/obs"
)

const (
	plansCacheKey      = "catalog:plans"
	promotionsCacheKey = "catalog:promotions"
)

// Cached decorates a Repository with a Redis JSON cache and in-flight
// request de-duplication: concurrent misses for the same key share one
// upstream read. Cache failures fall through to the inner repository.
type Cached struct {
	Inner  Repository
	Client *redis.Client
	TTL    time.Duration

	group singleflight.Group
}

// Plans returns the cached plan list, filling the cache on miss.
func (c *Cached) Plans(ctx context.Context) ([]Plan, error) {
	if hit, ok := getJSON[[]Plan](ctx, c.Client, plansCacheKey); ok {
		obs.ObserveCatalogCache("plans", "hit")
		return hit, nil
	}
	obs.ObserveCatalogCache("plans", "miss")
	v, err, _ := c.group.Do(plansCacheKey, func() (any, error) {
		plans, err := c.Inner.Plans(ctx)
		if err != nil {
			return nil, err
		}
		c.setJSON(ctx, plansCacheKey, plans)
		return plans, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Plan), nil
}

// Promotions returns the cached promotion list, filling the cache on miss.
func (c *Cached) Promotions(ctx context.Context) ([]Promotion, error) {
	if hit, ok := getJSON[[]Promotion](ctx, c.Client, promotionsCacheKey); ok {
		obs.ObserveCatalogCache("promotions", "hit")
		return hit, nil
	}
	obs.ObserveCatalogCache("promotions", "miss")
	v, err, _ := c.group.Do(promotionsCacheKey, func() (any, error) {
		promos, err := c.Inner.Promotions(ctx)
		if err != nil {
			return nil, err
		}
		c.setJSON(ctx, promotionsCacheKey, promos)
		return promos, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Promotion), nil
}

// Invalidate drops both cache keys so the next read refetches.
func (c *Cached) Invalidate(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Del(ctx, plansCacheKey, promotionsCacheKey).Err()
}

func getJSON[T any](ctx context.Context, client *redis.Client, key string) (T, bool) {
	var zero T
	if client == nil {
		return zero, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return zero, false
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, false
	}
	return out, true
}

func (c *Cached) setJSON(ctx context.Context, key string, v any) {
	if c == nil || c.Client == nil || c.TTL <= 0 {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Client.Set(ctx, key, data, c.TTL).Err()
}
