// Package ratelimit provides per-client request throttling using a token
// bucket per client.
package ratelimit

import (
	"sync"
	"time"
)

const cleanupInterval = 5 * time.Minute
const bucketIdleTTL = time.Hour

type bucket struct {
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

// Info describes the rate limit state returned with each decision.
type Info struct {
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter throttles clients to a fixed number of requests per minute.
// Burst capacity equals the per-minute limit.
type Limiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	perMinute int
	ticker    *time.Ticker
	stop      chan struct{}
}

// NewLimiter creates a limiter allowing perMinute requests per client.
func NewLimiter(perMinute int) *Limiter {
	l := &Limiter{
		buckets:   make(map[string]*bucket),
		perMinute: perMinute,
		ticker:    time.NewTicker(cleanupInterval),
		stop:      make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow reports whether a request from clientID may proceed, consuming one
// token when it does.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.perMinute), lastRefill: now}
		l.buckets[clientID] = b
	}

	refillRate := float64(l.perMinute) / 60.0
	b.tokens += now.Sub(b.lastRefill).Seconds() * refillRate
	if b.tokens > float64(l.perMinute) {
		b.tokens = float64(l.perMinute)
	}
	b.lastRefill = now
	b.lastAccess = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true, Info{Limit: l.perMinute, Remaining: int(b.tokens)}
	}

	retryAfter := time.Duration((1.0 - b.tokens) / refillRate * float64(time.Second))
	return false, Info{Limit: l.perMinute, Remaining: 0, RetryAfter: retryAfter}
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.removeIdle()
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) removeIdle() {
	cutoff := time.Now().Add(-bucketIdleTTL)
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, id)
		}
	}
}

// Stop shuts down the cleanup goroutine.
func (l *Limiter) Stop() {
	l.ticker.Stop()
	close(l.stop)
}
