package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthcall/config"
	"healthcall/utils"
)

func newLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewRateLimiter(cfg).Middleware())
	router.POST("/tool/:toolName", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func send(router http.Handler, method, path, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = remote
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	router := newLimitedRouter(config.RateLimitConfig{Enabled: true, RequestsPerSec: 0.001, Burst: 2, CleanupInterval: time.Hour})

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, send(router, http.MethodPost, "/tool/x", "10.0.0.1:1234").Code)
	}

	w := send(router, http.MethodPost, "/tool/x", "10.0.0.1:1234")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var body map[string]string
	require.NoError(t, utils.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Rate limit exceeded", body["error"])
}

func TestRateLimiter_PerClientIP(t *testing.T) {
	router := newLimitedRouter(config.RateLimitConfig{Enabled: true, RequestsPerSec: 0.001, Burst: 1, CleanupInterval: time.Hour})

	assert.Equal(t, http.StatusOK, send(router, http.MethodPost, "/tool/x", "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, send(router, http.MethodPost, "/tool/x", "10.0.0.1:2").Code)
	assert.Equal(t, http.StatusOK, send(router, http.MethodPost, "/tool/x", "10.0.0.2:1").Code)
}

func TestRateLimiter_HealthExempt(t *testing.T) {
	router := newLimitedRouter(config.RateLimitConfig{Enabled: true, RequestsPerSec: 0.001, Burst: 1, CleanupInterval: time.Hour})

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, send(router, http.MethodGet, "/health", "10.0.0.1:1").Code)
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	router := newLimitedRouter(config.RateLimitConfig{Enabled: false, RequestsPerSec: 0.001, Burst: 1})

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, send(router, http.MethodPost, "/tool/x", "10.0.0.1:1").Code)
	}
}

func TestRateLimiter_CleanupRemovesIdleEntries(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerSec: 1, Burst: 1, CleanupInterval: 10 * time.Millisecond})

	rl.GetLimiter("a")
	time.Sleep(30 * time.Millisecond)
	rl.GetLimiter("b")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.limiters, "a")
	assert.Contains(t, rl.limiters, "b")
}
