package ratelimiter

import (
	"testing"
	"time"

	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestFixedWindowLimiter(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 2,
		TimeFrame:            time.Hour,
		Enabled:              true,
	}, nil)

	ok, _ := limiter.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = limiter.Allow("10.0.0.1")
	assert.True(t, ok)

	ok, retryAfter := limiter.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Greater(t, retryAfter, time.Duration(0))

	// Other clients have their own window.
	ok, _ = limiter.Allow("10.0.0.2")
	assert.True(t, ok)
}

func TestFixedWindowLimiterReset(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 1,
		TimeFrame:            10 * time.Millisecond,
		Enabled:              true,
	}, nil)

	ok, _ := limiter.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = limiter.Allow("10.0.0.1")
	assert.False(t, ok)

	time.Sleep(20 * time.Millisecond)

	ok, _ = limiter.Allow("10.0.0.1")
	assert.True(t, ok)
}
