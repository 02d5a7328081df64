package tasks_test

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/carrierdesk/backend-carrier/internal/catalog"
	"github.com/carrierdesk/backend-carrier/internal/tasks"
)

type staticRepo struct {
	plans []catalog.Plan
	err   error
}

func (s staticRepo) Plans(context.Context) ([]catalog.Plan, error) {
	return s.plans, s.err
}

func (s staticRepo) Promotions(context.Context) ([]catalog.Promotion, error) {
	return nil, s.err
}

func TestCatalogRefresherWarmsCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	cache := &catalog.Cached{
		Inner:  staticRepo{plans: []catalog.Plan{{ID: "ultimate", Name: "Unlimited Ultimate"}}},
		Client: client,
		TTL:    5 * time.Minute,
	}
	refresher := &tasks.CatalogRefresher{Cache: cache, Logger: zerolog.Nop()}

	require.NoError(t, refresher.ProcessTask(context.Background(), tasks.NewCatalogRefreshTask()))
	require.True(t, mr.Exists("catalog:plans"))
	require.True(t, mr.Exists("catalog:promotions"))
}

func TestCatalogRefresherPropagatesSourceError(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	cache := &catalog.Cached{Inner: staticRepo{err: errors.New("db down")}, Client: client, TTL: time.Minute}
	refresher := &tasks.CatalogRefresher{Cache: cache, Logger: zerolog.Nop()}

	require.Error(t, refresher.ProcessTask(context.Background(), tasks.NewCatalogRefreshTask()))
}
