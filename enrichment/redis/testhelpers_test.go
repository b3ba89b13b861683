//go:build integration

package redis_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/marcelsud/bookshelf/enrichment/redis"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// startRedis runs a throwaway Redis for the test and returns its host:port.
func startRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "start redis")
	t.Cleanup(func() {
		if err := ctr.Terminate(ctx); err != nil {
			t.Logf("terminate redis: %v", err)
		}
	})

	uri, err := ctr.ConnectionString(ctx)
	require.NoError(t, err, "redis connection string")
	return strings.TrimPrefix(uri, "redis://")
}

func newCache(t *testing.T, addr string, ttl time.Duration) *redis.Cache {
	t.Helper()

	cache, err := redis.NewCache(addr, "", 0, ttl)
	require.NoError(t, err, "connect cache")
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}
