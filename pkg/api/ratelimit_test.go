package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_FixedWindow(t *testing.T) {
	now := time.Now()
	limiter := newRateLimiter()
	limiter.now = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.allow("auth:user-1", 5), "request %d within limit", i+1)
	}
	assert.False(t, limiter.allow("auth:user-1", 5), "sixth request over limit")

	// Other keys are unaffected.
	assert.True(t, limiter.allow("auth:user-2", 5))
	assert.True(t, limiter.allow("general:user-1", 5))

	// The window resets after a minute.
	now = now.Add(61 * time.Second)
	assert.True(t, limiter.allow("auth:user-1", 5))
}

func TestRateLimiter_SweepsStaleWindows(t *testing.T) {
	now := time.Now()
	limiter := newRateLimiter()
	limiter.now = func() time.Time { return now }

	limiter.allow("auth:a", 5)
	limiter.allow("auth:b", 5)

	now = now.Add(3 * time.Minute)
	limiter.allow("auth:c", 5)

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Len(t, limiter.windows, 1, "stale windows dropped on rollover")
}
