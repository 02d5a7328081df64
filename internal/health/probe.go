package health

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// DepsProbe checks the datastore dependencies the pricing API relies on.
type DepsProbe struct {
	Pool  *pgxpool.Pool
	Redis *redis.Client
}

func (p DepsProbe) PingDB(ctx context.Context, timeout time.Duration) error {
	if p.Pool == nil {
		return fmt.Errorf("postgres pool not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.Pool.Ping(ctx)
}

func (p DepsProbe) PingRedis(ctx context.Context, timeout time.Duration) error {
	if p.Redis == nil {
		return fmt.Errorf("redis client not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.Redis.Ping(ctx).Err()
}
