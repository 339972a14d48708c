// Package ratelimit throttles requests per client using token buckets keyed
// by client, path and method.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a single token bucket. Tokens refill continuously at refillRate
// per second up to capacity; each allowed request consumes one token.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64
	tokens     float64
	lastRefill time.Time
	lastUsed   time.Time
}

// newBucket returns a full bucket.
func newBucket(capacity int, refillRate float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastUsed:   now,
	}
}

// refillLocked credits tokens for the time elapsed since the last refill.
// Callers must hold b.mu.
func (b *bucket) refillLocked(now time.Time) {
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
}

// take consumes one token if available.
func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refillLocked(now)
	b.lastUsed = now

	if b.tokens < 1.0 {
		return false
	}
	b.tokens -= 1.0
	return true
}

// status reports the remaining whole tokens and when the bucket refills
// completely, without consuming anything.
func (b *bucket) status() (remaining int, resetTime time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refillLocked(now)

	remaining = int(b.tokens)
	resetTime = now
	if b.tokens < b.capacity {
		secondsUntilFull := (b.capacity - b.tokens) / b.refillRate
		resetTime = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return remaining, resetTime
}

// idleSince reports whether the bucket has not been used since the cutoff.
func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastUsed.Before(cutoff)
}

// Info describes the rate limit state returned with every decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks one bucket per client+endpoint+method combination.
type Limiter struct {
	mu      sync.RWMutex
	buckets map[string]*bucket
	config  *Config
	ticker  *time.Ticker
	done    chan struct{}
}

// NewLimiter creates a limiter; nil config enables defaults.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.ticker = time.NewTicker(config.CleanupInterval)
		l.done = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow decides whether a request from clientID may hit the endpoint.
// Whitelisted clients bypass limiting entirely; blacklisted clients are
// always denied. Endpoints with a non-positive configured limit are
// unlimited.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	cfg := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if cfg == nil {
		cfg = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if cfg.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + endpoint + ":" + method
	b := l.bucketFor(key, cfg)

	allowed := b.take()
	remaining, resetTime := b.status()

	var retryAfter time.Duration
	if !allowed {
		if retryAfter = time.Until(resetTime); retryAfter < 0 {
			retryAfter = 0
		}
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      cfg.Limit,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}
}

// bucketFor returns the bucket for the key, creating it on first use.
func (l *Limiter) bucketFor(key string, cfg *EndpointConfig) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return b
	}

	capacity := cfg.Burst
	if capacity <= 0 {
		capacity = cfg.Limit
	}
	refillRate := float64(cfg.Limit) / cfg.Window.Seconds()

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.buckets[key]; ok {
		return existing
	}
	b = newBucket(capacity, refillRate)
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.dropIdleBuckets()
		case <-l.done:
			return
		}
	}
}

// dropIdleBuckets discards buckets untouched for over an hour so the map
// does not grow without bound.
func (l *Limiter) dropIdleBuckets() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.done != nil {
		close(l.done)
	}
}
