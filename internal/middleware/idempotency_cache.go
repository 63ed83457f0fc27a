package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedResponse is a replayable 2xx response.
type cachedResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// idempotencyCache keeps the most recent responses per idempotency key
// until they expire. Entries past size are evicted least recently used first.
type idempotencyCache struct {
	entries *expirable.LRU[string, *cachedResponse]
}

func newIdempotencyCache(size int, ttl time.Duration) *idempotencyCache {
	return &idempotencyCache{
		entries: expirable.NewLRU[string, *cachedResponse](size, nil, ttl),
	}
}

// Get retrieves a cached response.
func (c *idempotencyCache) Get(key string) (*cachedResponse, bool) {
	return c.entries.Get(key)
}

// Set stores a cached response, restarting its TTL.
func (c *idempotencyCache) Set(key string, resp *cachedResponse) {
	c.entries.Add(key, resp)
}

// Len returns the number of live entries.
func (c *idempotencyCache) Len() int {
	return c.entries.Len()
}
