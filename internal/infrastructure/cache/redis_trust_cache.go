package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"cartas_marketplace/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const trustKeyPrefix = "cartas:trust:"

// RedisTrustLevelCache stores each user's KYC level as a plain integer string.
type RedisTrustLevelCache struct {
	client redis.Cmdable
}

var _ interfaces.ITrustLevelCache = (*RedisTrustLevelCache)(nil)

func NewRedisTrustLevelCache(client redis.Cmdable) *RedisTrustLevelCache {
	return &RedisTrustLevelCache{client: client}
}

func (c *RedisTrustLevelCache) Get(ctx context.Context, userID string) (int, bool, error) {
	raw, err := c.client.Get(ctx, trustKeyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	level, convErr := strconv.Atoi(raw)
	if convErr != nil {
		// A corrupt entry is treated as a miss and overwritten by the next Set.
		return 0, false, nil
	}
	return level, true, nil
}

func (c *RedisTrustLevelCache) Set(ctx context.Context, userID string, level int, ttl time.Duration) error {
	return c.client.Set(ctx, trustKeyPrefix+userID, strconv.Itoa(level), ttl).Err()
}

func (c *RedisTrustLevelCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, trustKeyPrefix+userID).Err()
}
