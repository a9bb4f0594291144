package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrExpire atomically increments the window counter and sets its TTL on
// first use, so a window cannot leak without an expiry.
var incrExpire = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// Limiter is a fixed-window request counter backed by Redis.
// Key format: rl:<caller key>
type Limiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLimiter creates a Limiter allowing limit requests per window.
func NewLimiter(client *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{client: client, limit: int64(limit), window: window}
}

// Allow reports whether the caller identified by key is within its window
// budget. Errors are returned alongside a permissive verdict so callers can
// fail open when Redis is unavailable.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	n, err := incrExpire.Run(ctx, l.client, []string{"rl:" + key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return true, err
	}
	return n <= l.limit, nil
}
