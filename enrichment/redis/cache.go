// Package redis caches resolved ISBN candidates in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/marcelsud/bookshelf/enrichment"
	"github.com/redis/go-redis/v9"
)

/* Redis implementation of enrichment.Cache
 * One string key per ISBN holding the candidate as JSON, expiring after the TTL.
 */

const keyPrefix = "bookshelf:isbn"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache connects to Redis and checks the connection.
func NewCache(addr, password string, db int, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return &Cache{
		client: client,
		ttl:    ttl,
	}, nil
}

func key(isbn string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, isbn)
}

func (c *Cache) Get(ctx context.Context, isbn string) (enrichment.Candidate, bool, error) {
	data, err := c.client.Get(ctx, key(isbn)).Bytes()
	if errors.Is(err, redis.Nil) {
		return enrichment.Candidate{}, false, nil
	}
	if err != nil {
		return enrichment.Candidate{}, false, fmt.Errorf("getting cached candidate: %w", err)
	}

	var cand enrichment.Candidate
	if err := json.Unmarshal(data, &cand); err != nil {
		return enrichment.Candidate{}, false, fmt.Errorf("unmarshaling cached candidate: %w", err)
	}
	return cand, true, nil
}

func (c *Cache) Set(ctx context.Context, isbn string, cand enrichment.Candidate) error {
	data, err := json.Marshal(cand)
	if err != nil {
		return fmt.Errorf("marshaling candidate: %w", err)
	}
	if err := c.client.Set(ctx, key(isbn), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching candidate: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}
