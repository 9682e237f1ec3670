package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"tour-packages-backend/internal/domain/models"
)

const statsTTL = 5 * time.Minute

// StatsCache is a read-through Redis cache for destination statistics.
// Every operation is miss-tolerant: a Redis failure behaves like a cache
// miss and the caller falls back to the store.
type StatsCache struct {
	client *redis.Client
}

func NewStatsCache(addr string) *StatsCache {
	if strings.TrimSpace(addr) == "" {
		return nil
	}
	return &StatsCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// NewStatsCacheWithClient is used by tests to wire an in-memory server.
func NewStatsCacheWithClient(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

func (c *StatsCache) Get(ctx context.Context, destination string) (models.DestinationStats, bool) {
	var stats models.DestinationStats
	if c == nil || c.client == nil {
		return stats, false
	}

	raw, err := c.client.Get(ctx, statsKey(destination)).Result()
	if err != nil {
		return stats, false
	}
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return models.DestinationStats{}, false
	}
	return stats, true
}

func (c *StatsCache) Set(ctx context.Context, destination string, stats models.DestinationStats) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, statsKey(destination), raw, statsTTL).Err()
}

// Invalidate drops every cached stats entry; called after package writes.
func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, "stats:destination:*", 100).Iterator()
	for iter.Next(ctx) {
		_ = c.client.Del(ctx, iter.Val()).Err()
	}
}

func statsKey(destination string) string {
	return "stats:destination:" + strings.ToLower(strings.TrimSpace(destination))
}
