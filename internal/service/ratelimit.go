package service

import (
	"sync"
	"time"
)

// TokenBucket is an in-memory per-client rate limiter. Each client key gets
// its own bucket that starts full and refills continuously. It is safe for
// concurrent use.
type TokenBucket struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens added per second
	capacity float64
	idleTTL  time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewTokenBucket creates a limiter allowing bursts of capacity requests per
// key, refilling at rate tokens per second. A background goroutine evicts
// buckets idle for more than ten minutes until Close is called.
func NewTokenBucket(rate, capacity float64) *TokenBucket {
	tb := &TokenBucket{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
		idleTTL:  10 * time.Minute,
		stop:     make(chan struct{}),
	}
	go tb.evictLoop(5 * time.Minute)
	return tb
}

// Allow consumes one token for key and reports whether one was available.
func (tb *TokenBucket) Allow(key string) bool {
	return tb.allowAt(key, time.Now())
}

func (tb *TokenBucket) allowAt(key string, now time.Time) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	b, ok := tb.buckets[key]
	if !ok {
		b = &bucket{tokens: tb.capacity, last: now}
		tb.buckets[key] = b
	}

	elapsed := now.Sub(b.last).Seconds()
	b.tokens = min(b.tokens+elapsed*tb.rate, tb.capacity)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Len returns the number of tracked keys.
func (tb *TokenBucket) Len() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return len(tb.buckets)
}

// Close stops the eviction goroutine. It is safe to call more than once.
func (tb *TokenBucket) Close() {
	tb.stopOnce.Do(func() { close(tb.stop) })
}

func (tb *TokenBucket) evictLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-tb.stop:
			return
		case now := <-ticker.C:
			tb.evictIdle(now)
		}
	}
}

func (tb *TokenBucket) evictIdle(now time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	cutoff := now.Add(-tb.idleTTL)
	for key, b := range tb.buckets {
		if b.last.Before(cutoff) {
			delete(tb.buckets, key)
		}
	}
}
