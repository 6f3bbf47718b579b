package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"go-jobseeker-backend/internal/delivery/http/response"
	"go-jobseeker-backend/pkg/logger"
	"go-jobseeker-backend/pkg/redis"
)

// RateLimitConfig holds configuration for per-client request limiting.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
	// Key prefix for Redis counters
	KeyPrefix string
}

// rateLimitEntry tracks a request count for one key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	sweepMu        sync.Mutex
	nextSweep      time.Time
)

// Atomic INCR with TTL set on the first hit of a window.
// KEYS[1] = counter key, ARGV[1] = TTL seconds.
const rateLimitScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RateLimitMiddleware limits requests per client IP. Counters live in
// Redis when available so the limit holds across instances; otherwise an
// in-memory window is used. The limiter fails open: a Redis error never
// rejects a request.
func RateLimitMiddleware(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "rl:ip:"
	}

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		var count int
		var resetAt time.Time

		if client := redis.Client(); client != nil {
			var err error
			count, resetAt, err = checkRedis(c, client, key, cfg)
			if err != nil {
				logger.Log.Warn("rate limiter falling back to memory", "error", err)
				count, resetAt = checkMemory(key, cfg)
			}
		} else {
			count, resetAt = checkMemory(key, cfg)
		}

		remaining := cfg.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > cfg.Limit {
			c.Header("Retry-After", strconv.Itoa(int(time.Until(resetAt).Seconds())+1))
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}

func checkRedis(c *gin.Context, client *goredis.Client, key string, cfg RateLimitConfig) (int, time.Time, error) {
	res, err := client.Eval(c.Request.Context(), rateLimitScript, []string{key},
		int(cfg.Window.Seconds())).Result()
	if err != nil {
		return 0, time.Time{}, err
	}

	vals := res.([]interface{})
	count := int(vals[0].(int64))
	ttl := time.Duration(vals[1].(int64)) * time.Second
	return count, time.Now().Add(ttl), nil
}

func checkMemory(key string, cfg RateLimitConfig) (int, time.Time) {
	now := time.Now()

	// Evict lapsed counters at most once per window so the map does not
	// grow with every distinct client the process has ever seen.
	sweepMu.Lock()
	if now.After(nextSweep) {
		nextSweep = now.Add(cfg.Window)
		sweepMu.Unlock()
		sweepMemory(now)
	} else {
		sweepMu.Unlock()
	}

	v, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(cfg.Window)})
	entry := v.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(cfg.Window)
	}
	entry.count++
	return entry.count, entry.resetAt
}

// sweepMemory removes every counter whose window has already lapsed.
func sweepMemory(now time.Time) {
	rateLimitStore.Range(func(k, v interface{}) bool {
		entry := v.(*rateLimitEntry)
		entry.mu.Lock()
		lapsed := now.After(entry.resetAt)
		entry.mu.Unlock()
		if lapsed {
			rateLimitStore.Delete(k)
		}
		return true
	})
}
