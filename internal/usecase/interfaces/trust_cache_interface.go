package interfaces

import (
	"context"
	"time"
)

// ITrustLevelCache caches stored KYC levels in front of IUserTrustRepository.
type ITrustLevelCache interface {
	Get(ctx context.Context, userID string) (level int, found bool, err error)
	Set(ctx context.Context, userID string, level int, ttl time.Duration) error
	Invalidate(ctx context.Context, userID string) error
}
