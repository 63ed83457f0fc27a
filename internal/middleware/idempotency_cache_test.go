//go:build !integration

package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdempotencyCache_GetSet(t *testing.T) {
	cache := newIdempotencyCache(10, time.Minute)

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	resp := &cachedResponse{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"total":130}`),
	}
	cache.Set("k", resp)

	got, ok := cache.Get("k")
	assert.True(t, ok)
	assert.Same(t, resp, got)
	assert.Equal(t, 1, cache.Len())
}

func TestIdempotencyCache_Expires(t *testing.T) {
	cache := newIdempotencyCache(10, 30*time.Millisecond)
	cache.Set("k", &cachedResponse{StatusCode: 200})

	assert.Eventually(t, func() bool {
		_, ok := cache.Get("k")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestIdempotencyCache_EvictsOldest(t *testing.T) {
	cache := newIdempotencyCache(2, time.Minute)
	cache.Set("a", &cachedResponse{StatusCode: 200})
	cache.Set("b", &cachedResponse{StatusCode: 200})
	cache.Set("c", &cachedResponse{StatusCode: 200})

	_, okA := cache.Get("a")
	_, okC := cache.Get("c")
	assert.False(t, okA)
	assert.True(t, okC)
	assert.Equal(t, 2, cache.Len())
}
