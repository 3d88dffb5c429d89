package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_AllowsWithinBudget(t *testing.T) {
	limiter := NewFixedWindowRateLimiter(3, time.Minute)

	assert.True(t, limiter.Allow("client-a"))
	assert.True(t, limiter.Allow("client-a"))
	assert.True(t, limiter.Allow("client-a"))
	assert.False(t, limiter.Allow("client-a"))
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewFixedWindowRateLimiter(1, time.Minute)

	assert.True(t, limiter.Allow("client-a"))
	assert.True(t, limiter.Allow("client-b"))
	assert.False(t, limiter.Allow("client-a"))
}

func TestRateLimiter_WindowRollover(t *testing.T) {
	limiter := NewFixedWindowRateLimiter(1, time.Minute)

	current := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	assert.True(t, limiter.Allow("client-a"))
	assert.False(t, limiter.Allow("client-a"))

	current = current.Add(time.Minute)
	assert.True(t, limiter.Allow("client-a"))
}

func TestRateLimiter_Sweep(t *testing.T) {
	limiter := NewFixedWindowRateLimiter(5, time.Minute)

	current := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	limiter.Allow("client-a")
	limiter.Allow("client-b")

	assert.Equal(t, 0, limiter.Sweep())

	current = current.Add(2 * time.Minute)
	assert.Equal(t, 2, limiter.Sweep())

	stats := limiter.Stats()
	assert.Equal(t, 0, stats["tracked_clients"])
}

func TestRateLimiter_Stats(t *testing.T) {
	limiter := NewFixedWindowRateLimiter(1, time.Minute)

	limiter.Allow("client-a")
	limiter.Allow("client-a")

	stats := limiter.Stats()
	assert.Equal(t, int64(1), stats["allowed_requests"])
	assert.Equal(t, int64(1), stats["rejected_requests"])
}

func TestRateLimiter_Reset(t *testing.T) {
	limiter := NewFixedWindowRateLimiter(1, time.Minute)

	limiter.Allow("client-a")
	limiter.Reset()

	assert.True(t, limiter.Allow("client-a"))
}

func TestRateLimiter_DefaultsOnBadArguments(t *testing.T) {
	limiter := NewFixedWindowRateLimiter(0, 0)

	stats := limiter.Stats()
	assert.Equal(t, 120, stats["requests_per_window"])
	assert.Equal(t, time.Minute.String(), stats["window"])
}
