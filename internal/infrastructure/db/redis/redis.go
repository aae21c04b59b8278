// Package redis holds the client used by the sliding-window rate limiter
// and the limiter itself.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout bounds the start-up connectivity check. Request-path calls
// carry their own deadlines.
const pingTimeout = 5 * time.Second

// Config selects the Redis instance backing the rate limiter.
type Config struct {
	Addr string
	DB   int
}

// Connect opens a client against cfg and pings it once so a misconfigured
// address fails at boot instead of on the first throttled login.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}
