package ports

import (
	"context"
	"time"
)

// RateLimiter bounds request rates per key over a sliding window.
type RateLimiter interface {
	// Allow records one hit for key and reports whether it stays within
	// limit hits per window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
