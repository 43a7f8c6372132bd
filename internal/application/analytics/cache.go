package analytics

import (
	"context"
	"time"
)

// Cache keys for dashboard aggregates. Every sale mutation must invalidate
// all of them; readers repopulate on the next request.
const (
	KeyStats        = "analytics:stats"
	KeyDailyRevenue = "analytics:daily-revenue"
	KeyMonthly      = "analytics:monthly-revenue-sales"
)

// TTL bounds staleness when an invalidation is lost.
const TTL = 60 * time.Second

// Cache is the optional read-through cache for dashboard aggregates.
// Implementations must treat a miss as (false, nil), not an error.
type Cache interface {
	GetJSON(ctx context.Context, key string, v any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
