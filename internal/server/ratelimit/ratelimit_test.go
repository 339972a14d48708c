package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket_Take(t *testing.T) {
	b := newBucket(10, 1.0)

	for i := 0; i < 10; i++ {
		assert.True(t, b.take(), "request %d should be allowed", i+1)
	}
	assert.False(t, b.take(), "bucket should be empty after the burst")
}

func TestBucket_Refill(t *testing.T) {
	b := newBucket(10, 1.0)
	for i := 0; i < 10; i++ {
		b.take()
	}

	time.Sleep(1100 * time.Millisecond)

	assert.True(t, b.take(), "one token should have refilled")
	assert.False(t, b.take(), "refilled token is already spent")
}

func TestBucket_Status(t *testing.T) {
	b := newBucket(10, 1.0)
	for i := 0; i < 5; i++ {
		b.take()
	}

	remaining, resetTime := b.status()
	assert.Equal(t, 5, remaining)
	assert.True(t, resetTime.After(time.Now()), "reset time should be in the future")
}

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/test", "GET")
		require.True(t, allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/test", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/test", "GET")
		require.True(t, allowed, "whitelisted client must never be limited")
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.1": true},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("192.168.1.1", "/test", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/test", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/resumes/upload", Method: "POST", Limit: 5, Window: time.Hour, Burst: 5},
		},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/api/resumes/upload", "POST")
		require.True(t, allowed, "burst request %d should be allowed", i+1)
		assert.Equal(t, 5, info.Limit)
	}

	allowed, _ := limiter.Allow("127.0.0.1", "/api/resumes/upload", "POST")
	assert.False(t, allowed, "burst is exhausted and the hourly refill is slow")

	// Unmatched endpoints fall back to the default limit.
	allowed, info := limiter.Allow("127.0.0.1", "/other", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLimiter_BurstSmallerThanLimit(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/burst", Method: "POST", Limit: 10, Window: time.Minute, Burst: 5},
		},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/burst", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("127.0.0.1", "/burst", "POST")
	assert.False(t, allowed, "capacity is the burst, not the window limit")
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("127.0.0.1", "/test", "GET"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowedCount)
}

func TestLimiter_CleanupKeepsActiveBuckets(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    10,
		DefaultWindow:   time.Minute,
		CleanupInterval: 100 * time.Millisecond,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		clientID := fmt.Sprintf("127.0.0.%d", i+1)
		allowed, _ := limiter.Allow(clientID, "/test", "GET")
		require.True(t, allowed)
	}

	// Recently used buckets survive a cleanup pass.
	time.Sleep(150 * time.Millisecond)
	for i := 0; i < 10; i++ {
		clientID := fmt.Sprintf("127.0.0.%d", i+1)
		allowed, _ := limiter.Allow(clientID, "/test", "GET")
		require.True(t, allowed, "bucket for %s should still work", clientID)
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/test", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}
