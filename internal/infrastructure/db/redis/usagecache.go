package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

const (
	usageKey = "keyword:usage"
	usageTTL = 5 * time.Minute
)

// UsageCache caches the keyword usage report in Redis as a JSON blob.
// Association writes invalidate it; reads repopulate it lazily.
type UsageCache struct {
	client *redis.Client
}

// NewUsageCache creates a UsageCache wrapping the given Redis client.
func NewUsageCache(client *redis.Client) *UsageCache {
	return &UsageCache{client: client}
}

// Get returns the cached report and whether it was present.
func (c *UsageCache) Get(ctx context.Context) ([]domain.KeywordUsage, bool, error) {
	raw, err := c.client.Get(ctx, usageKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("usage cache get: %w", err)
	}

	var usage []domain.KeywordUsage
	if err := json.Unmarshal(raw, &usage); err != nil {
		return nil, false, fmt.Errorf("usage cache decode: %w", err)
	}
	return usage, true, nil
}

// Set stores the report with a short TTL as a safety net against missed
// invalidations.
func (c *UsageCache) Set(ctx context.Context, usage []domain.KeywordUsage) error {
	raw, err := json.Marshal(usage)
	if err != nil {
		return fmt.Errorf("usage cache encode: %w", err)
	}
	if err := c.client.Set(ctx, usageKey, raw, usageTTL).Err(); err != nil {
		return fmt.Errorf("usage cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached report.
func (c *UsageCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, usageKey).Err(); err != nil {
		return fmt.Errorf("usage cache invalidate: %w", err)
	}
	return nil
}
