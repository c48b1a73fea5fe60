package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter applies a per-client token bucket. Buckets idle for more
// than bucketIdleTTL are dropped by a background sweep.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	stop    chan struct{}
}

const bucketIdleTTL = 10 * time.Minute

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	perSec   float64
	touched  time.Time
}

// NewRateLimiter starts the idle-bucket sweeper. Call Stop on shutdown.
func NewRateLimiter(sweepInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	go rl.sweep(sweepInterval)
	return rl
}

// Stop terminates the sweeper goroutine.
func (rl *RateLimiter) Stop() { close(rl.stop) }

// Limit rejects requests beyond maxPerMinute per client IP with 429 and
// a Retry-After hint.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.bucketFor(clientKey(r), maxPerMinute)
			if !b.take() {
				w.Header().Set("Retry-After", strconv.Itoa(int(60/float64(maxPerMinute))+1))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientKey is the remote IP without the port. Proxy-supplied forwarding
// headers are not trusted here.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) bucketFor(key string, maxPerMinute int) *bucket {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if b, ok := rl.buckets[key]; ok {
		return b
	}
	capacity := float64(maxPerMinute)
	b := &bucket{
		tokens:   capacity,
		capacity: capacity,
		perSec:   capacity / 60,
		touched:  time.Now(),
	}
	rl.buckets[key] = b
	return b
}

func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.touched).Seconds() * b.perSec
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.touched = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-bucketIdleTTL)
			rl.mu.Lock()
			for key, b := range rl.buckets {
				b.mu.Lock()
				stale := b.touched.Before(cutoff)
				b.mu.Unlock()
				if stale {
					delete(rl.buckets, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
