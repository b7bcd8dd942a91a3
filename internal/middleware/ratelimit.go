package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"learnpath-backend/internal/logger"
	"learnpath-backend/internal/models"
)

// Limiter decides whether another request from key fits the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type visitor struct {
	count       int
	windowStart time.Time
}

// RateLimiter is a per-process fixed-window limiter.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	// Cleanup goroutine
	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()
		for {
			select {
			case <-rl.stop:
				return
			case <-ticker.C:
				rl.sweep()
			}
		}
	}()

	return rl
}

// Stop ends the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	for key, v := range rl.visitors {
		if now.Sub(v.windowStart) > rl.window {
			delete(rl.visitors, key)
		}
	}
}

func (rl *RateLimiter) Allow(_ context.Context, key string) (bool, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, exists := rl.visitors[key]
	if !exists || now.Sub(v.windowStart) > rl.window {
		rl.visitors[key] = &visitor{count: 1, windowStart: now}
		return rl.limit > 0, nil
	}

	v.count++
	return v.count <= rl.limit, nil
}

// RedisCounter is the subset of *redis.Client the shared limiter uses.
// These are plain commands any Redis version accepts.
type RedisCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// RedisRateLimiter shares fixed-window counters across replicas.
type RedisRateLimiter struct {
	client RedisCounter
	limit  int
	window time.Duration
	prefix string
}

func NewRedisRateLimiter(client RedisCounter, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ratelimit:",
	}
}

// Allow counts the request and starts the window on the first one.
func (rl *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := rl.prefix + key

	count, err := rl.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit counter: %w", err)
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, k, rl.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit window: %w", err)
		}
	}

	if count <= int64(rl.limit) {
		return true, nil
	}

	// A counter left without a TTL would block the client forever
	if ttl, err := rl.client.TTL(ctx, k).Result(); err == nil && ttl == -1 {
		if err := rl.client.Expire(ctx, k, rl.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit window: %w", err)
		}
	}
	return false, nil
}

// RateLimit rejects clients over the limit with 429. A failing limiter
// backend lets the request through.
func RateLimit(l Limiter, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := l.Allow(r.Context(), clientKey(r))
			if err != nil {
				log.Warn("rate limiter unavailable", "error", err, "request_id", GetRequestID(r.Context()))
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				writeError(w, http.StatusTooManyRequests, models.CodeRateLimited, "Too many requests. Please try again later.", r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
