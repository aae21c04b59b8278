package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// SlidingWindowLimiter counts hits per key in a Redis sorted set keyed by
// nanosecond timestamps. Sharing counters in Redis keeps windows accurate
// across replicas, unlike per-process state.
type SlidingWindowLimiter struct {
	client *redis.Client
}

func NewSlidingWindowLimiter(client *redis.Client) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{client: client}
}

// Allow records one hit for key and reports whether the hit count within the
// window stays at or under limit. The hit is recorded even when the answer
// is no, so hammering a limited key does not let it cool down.
func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	cutoff := strconv.FormatInt(now.Add(-window).UnixNano(), 10)
	member := strconv.FormatInt(now.UnixNano(), 10)

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, l.key(key), "0", cutoff)
	pipe.ZAdd(ctx, l.key(key), redis.Z{Score: float64(now.UnixNano()), Member: member})
	card := pipe.ZCard(ctx, l.key(key))
	pipe.Expire(ctx, l.key(key), window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}
	return card.Val() <= int64(limit), nil
}

func (l *SlidingWindowLimiter) key(key string) string {
	return "ratelimit:" + key
}
