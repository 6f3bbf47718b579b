package redis

import (
	"context"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"go-jobseeker-backend/pkg/logger"
)

var (
	client *goredis.Client
	mu     sync.RWMutex
)

// Init connects the shared client. A missing URL is not an error: callers
// that depend on redis (the rate limiter) fall back to in-memory state.
func Init(url, password string) {
	if url == "" {
		return
	}

	opts, err := goredis.ParseURL(url)
	if err != nil {
		// Accept plain host:port as well as redis:// URLs
		opts = &goredis.Options{Addr: url}
	}
	if password != "" {
		opts.Password = password
	}

	c := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		logger.Log.Warn("Redis unreachable, continuing without it", "error", err)
		_ = c.Close()
		return
	}

	mu.Lock()
	client = c
	mu.Unlock()
	logger.Log.Info("Redis connection established")
}

// Client returns the shared client, or nil when redis is not configured
// or unreachable.
func Client() *goredis.Client {
	mu.RLock()
	defer mu.RUnlock()
	return client
}

// SetClient overrides the shared client. Used by tests (miniredis).
func SetClient(c *goredis.Client) {
	mu.Lock()
	client = c
	mu.Unlock()
}

// Close releases the shared client on shutdown.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if client != nil {
		_ = client.Close()
		client = nil
	}
}
