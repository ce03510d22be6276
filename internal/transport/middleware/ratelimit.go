package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const idleBucketTTL = 10 * time.Minute

// RateLimiter is a per-client token bucket limiter. Clients are keyed by the
// host part of RemoteAddr.
type RateLimiter struct {
	buckets sync.Map // map[string]*bucket
	stop    chan struct{}
	once    sync.Once
	now     func() time.Time
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter starts a limiter whose idle buckets are swept every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the sweeper. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows maxPerMinute requests per client with bursts up to the same
// amount. A non-positive limit disables limiting.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if maxPerMinute <= 0 {
			return next
		}
		retryAfter := strconv.Itoa(int(60/float64(maxPerMinute)) + 1)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.bucketFor(clientKey(r), maxPerMinute).allow(rl.now()) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) bucketFor(key string, maxPerMinute int) *bucket {
	if b, ok := rl.buckets.Load(key); ok {
		return b.(*bucket)
	}
	maxTokens := float64(maxPerMinute)
	b, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: maxTokens / 60,
		lastRefill: rl.now(),
	})
	return b.(*bucket)
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.maxTokens {
		b.tokens = b.maxTokens
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (b *bucket) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.lastRefill)
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep(rl.now())
		}
	}
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.buckets.Range(func(key, value any) bool {
		if value.(*bucket).idleSince(now) > idleBucketTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
