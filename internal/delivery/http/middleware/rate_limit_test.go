package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"go-jobseeker-backend/pkg/redis"
)

func rateLimitedRouter(cfg RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(cfg))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func doRequest(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitRedisBacked(t *testing.T) {
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	defer redis.SetClient(nil)

	r := rateLimitedRouter(RateLimitConfig{Limit: 3, Window: time.Minute, KeyPrefix: "rl:test:"})

	for i := 0; i < 3; i++ {
		w := doRequest(r)
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := doRequest(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimitWindowExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	defer redis.SetClient(nil)

	r := rateLimitedRouter(RateLimitConfig{Limit: 1, Window: time.Minute, KeyPrefix: "rl:exp:"})

	assert.Equal(t, http.StatusOK, doRequest(r).Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r).Code)

	// Advancing miniredis past the TTL opens a fresh window
	mr.FastForward(61 * time.Second)
	assert.Equal(t, http.StatusOK, doRequest(r).Code)
}

func TestRateLimitMemoryFallback(t *testing.T) {
	redis.SetClient(nil)

	r := rateLimitedRouter(RateLimitConfig{Limit: 2, Window: time.Minute, KeyPrefix: "rl:mem:"})

	assert.Equal(t, http.StatusOK, doRequest(r).Code)
	assert.Equal(t, http.StatusOK, doRequest(r).Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r).Code)
}

func TestRateLimitMemorySweepEvictsLapsedEntries(t *testing.T) {
	cfg := RateLimitConfig{Limit: 5, Window: time.Minute}

	checkMemory("rl:sweep:live", cfg)
	checkMemory("rl:sweep:stale", cfg)

	// Force the stale entry's window into the past
	v, ok := rateLimitStore.Load("rl:sweep:stale")
	assert.True(t, ok)
	v.(*rateLimitEntry).resetAt = time.Now().Add(-time.Second)

	sweepMemory(time.Now())

	_, ok = rateLimitStore.Load("rl:sweep:stale")
	assert.False(t, ok, "lapsed counter should be evicted")
	_, ok = rateLimitStore.Load("rl:sweep:live")
	assert.True(t, ok, "live counter should survive the sweep")
}
