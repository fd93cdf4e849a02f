// Package ratelimit throttles API clients with per-endpoint token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// idleBucketAge is how long a bucket may go unused before cleanup drops it.
const idleBucketAge = time.Hour

// bucket refills continuously at rate tokens per second up to capacity.
type bucket struct {
	capacity float64
	rate     float64
	tokens   float64
	refilled time.Time
	used     time.Time
}

func newBucket(limit int, window time.Duration, burst int, now time.Time) *bucket {
	capacity := burst
	if capacity <= 0 {
		capacity = limit
	}
	return &bucket{
		capacity: float64(capacity),
		rate:     float64(limit) / window.Seconds(),
		tokens:   float64(capacity),
		refilled: now,
		used:     now,
	}
}

func (b *bucket) refill(now time.Time) {
	if elapsed := now.Sub(b.refilled).Seconds(); elapsed > 0 {
		b.tokens = min(b.capacity, b.tokens+elapsed*b.rate)
	}
	b.refilled = now
}

// take consumes one token if one is available.
func (b *bucket) take(now time.Time) bool {
	b.refill(now)
	b.used = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// full returns when the bucket will be back at capacity.
func (b *bucket) full(now time.Time) time.Time {
	missing := b.capacity - b.tokens
	if missing <= 0 {
		return now
	}
	return now.Add(time.Duration(missing / b.rate * float64(time.Second)))
}

// nextToken returns how long until one token is available.
func (b *bucket) nextToken() time.Duration {
	if b.tokens >= 1 {
		return 0
	}
	return time.Duration((1 - b.tokens) / b.rate * float64(time.Second))
}

// Info contains information about rate limit status.
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

// Limiter keeps one bucket per client and endpoint rule.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	now     func() time.Time

	ticker   *time.Ticker
	stop     chan struct{}
	stopOnce sync.Once
}

// NewLimiter creates a limiter. A nil config allows 1000 requests a minute per client.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
		now:     time.Now,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.ticker = time.NewTicker(config.CleanupInterval)
		l.stop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// rule resolves the endpoint configuration for a request, falling back to the default.
func (l *Limiter) rule(endpoint, method string) EndpointConfig {
	if c := MatchEndpoint(endpoint, method, l.config.EndpointConfigs); c != nil {
		return *c
	}
	return EndpointConfig{
		Limit:  l.config.DefaultLimit,
		Window: l.config.DefaultWindow,
		Burst:  l.config.DefaultLimit,
	}
}

// Allow consumes a token for the client's request and reports whether it may proceed.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	rule := l.rule(endpoint, method)
	if rule.Limit <= 0 || rule.Window <= 0 {
		return true, Info{Allowed: true}
	}

	// Requests matching the same rule share a bucket, so
	// /sessions/a/suggestions and /sessions/b/suggestions draw from one budget.
	key := clientID + ":*"
	if rule.Path != "" {
		key = clientID + ":" + rule.Method + ":" + rule.Path
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(rule.Limit, rule.Window, rule.Burst, now)
		l.buckets[key] = b
	}

	allowed := b.take(now)
	info := Info{
		Allowed:   allowed,
		Limit:     rule.Limit,
		Remaining: int(b.tokens),
		ResetTime: b.full(now),
	}
	if !allowed {
		info.RetryAfter = b.nextToken()
	}
	return allowed, info
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.cleanup()
		case <-l.stop:
			return
		}
	}
}

// cleanup drops buckets idle for longer than idleBucketAge.
func (l *Limiter) cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idleBucketAge)
	removed := 0
	for key, b := range l.buckets {
		if b.used.Before(cutoff) {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

// Stop halts the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		if l.ticker != nil {
			l.ticker.Stop()
			close(l.stop)
		}
	})
}
