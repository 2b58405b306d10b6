package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedWithinWindow(t *testing.T) {
	limiter := NewLimiter(3, time.Minute)

	assert.True(t, limiter.IsAllowed("client-1"))
	assert.True(t, limiter.IsAllowed("client-1"))
	assert.True(t, limiter.IsAllowed("client-1"))
	assert.False(t, limiter.IsAllowed("client-1"))

	// Other identifiers are counted independently.
	assert.True(t, limiter.IsAllowed("client-2"))
}

func TestWindowExpiry(t *testing.T) {
	limiter := NewLimiter(1, 20*time.Millisecond)

	assert.True(t, limiter.IsAllowed("client-1"))
	assert.False(t, limiter.IsAllowed("client-1"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, limiter.IsAllowed("client-1"))
}

func TestRemaining(t *testing.T) {
	limiter := NewLimiter(5, time.Minute)

	assert.Equal(t, 5, limiter.Remaining("client-1"))

	limiter.IsAllowed("client-1")
	limiter.IsAllowed("client-1")
	assert.Equal(t, 3, limiter.Remaining("client-1"))

	for i := 0; i < 10; i++ {
		limiter.IsAllowed("client-1")
	}
	assert.Equal(t, 0, limiter.Remaining("client-1"))
}

func TestRemainingAfterExpiry(t *testing.T) {
	limiter := NewLimiter(2, 20*time.Millisecond)

	limiter.IsAllowed("client-1")
	limiter.IsAllowed("client-1")
	assert.Equal(t, 0, limiter.Remaining("client-1"))

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 2, limiter.Remaining("client-1"))
}

func TestReset(t *testing.T) {
	limiter := NewLimiter(1, time.Minute)

	assert.True(t, limiter.IsAllowed("client-1"))
	assert.False(t, limiter.IsAllowed("client-1"))

	limiter.Reset()
	assert.True(t, limiter.IsAllowed("client-1"))
}

func TestDefaults(t *testing.T) {
	limiter := NewLimiter(0, 0)
	assert.Equal(t, DefaultMaxRequests, limiter.Remaining("anyone"))
}
