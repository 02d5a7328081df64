// Package tasks defines the background jobs processed by cmd/worker.
package tasks

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/carrierdesk/backend-carrier/internal/catalog"
)

// TypeCatalogRefresh re-warms the Redis catalog cache from Postgres.
const TypeCatalogRefresh = "catalog:refresh"

// NewCatalogRefreshTask builds the refresh task. It carries no payload.
func NewCatalogRefreshTask() *asynq.Task {
	return asynq.NewTask(TypeCatalogRefresh, nil)
}

// CatalogRefresher drops the cached catalog and refills it so interactive
// quote requests rarely pay the Postgres round trip.
type CatalogRefresher struct {
	Cache  *catalog.Cached
	Logger zerolog.Logger
}

// ProcessTask implements asynq.Handler.
func (r *CatalogRefresher) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	if r.Cache == nil {
		return fmt.Errorf("catalog cache not configured")
	}
	if err := r.Cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate catalog cache: %w", err)
	}
	plans, err := r.Cache.Plans(ctx)
	if err != nil {
		return fmt.Errorf("warm plans: %w", err)
	}
	promos, err := r.Cache.Promotions(ctx)
	if err != nil {
		return fmt.Errorf("warm promotions: %w", err)
	}
	r.Logger.Info().
		Int("plans", len(plans)).
		Int("promotions", len(promos)).
		Msg("catalog cache refreshed")
	return nil
}
