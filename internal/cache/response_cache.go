package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "feed:"

// ResponseCache keeps rendered feed documents in Redis for the remainder
// of the cache window, so hot feeds are served without touching the
// database. The database stays the source of truth; a nil ResponseCache
// degrades to always-miss.
type ResponseCache struct {
	client *redis.Client
}

// New connects a ResponseCache to the given Redis address. An empty
// address returns nil, which every method treats as a disabled cache.
func New(addr string) *ResponseCache {
	if addr == "" {
		return nil
	}
	return &ResponseCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Get returns the cached document for a feed name together with its
// remaining time-to-live. A Redis failure is treated as a miss.
func (c *ResponseCache) Get(ctx context.Context, name string) (string, time.Duration, bool) {
	if c == nil {
		return "", 0, false
	}

	key := keyPrefix + name
	content, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("feed", name).Msg("response cache read failed")
		}
		return "", 0, false
	}

	ttl, err := c.client.TTL(ctx, key).Result()
	if err != nil || ttl <= 0 {
		return "", 0, false
	}

	return content, ttl, true
}

// Set stores a rendered document for the given time-to-live. Failures are
// logged and otherwise ignored; the next request falls through to the
// database.
func (c *ResponseCache) Set(ctx context.Context, name, content string, ttl time.Duration) {
	if c == nil || ttl <= 0 {
		return
	}

	if err := c.client.Set(ctx, keyPrefix+name, content, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("feed", name).Msg("response cache write failed")
	}
}
