//go:build !integration

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/service"
)

func TestNewShardedRateLimiter_Shards(t *testing.T) {
	tests := []struct {
		name           string
		numShards      int
		expectedShards int
	}{
		{name: "explicit shard count", numShards: 4, expectedShards: 4},
		{name: "zero uses default", numShards: 0, expectedShards: defaultNumShards},
		{name: "negative uses default", numShards: -3, expectedShards: defaultNumShards},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(10, time.Minute, tt.numShards)
			t.Cleanup(rl.Stop)

			total, perShard := rl.Stats()
			assert.Zero(t, total)
			assert.Len(t, perShard, tt.expectedShards)
		})
	}
}

func TestRateLimiter_Budget(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	t.Cleanup(rl.Stop)

	expected := []struct {
		allowed   bool
		remaining int
	}{
		{true, 2},
		{true, 1},
		{true, 0},
		{false, 0},
		{false, 0},
	}

	for i, want := range expected {
		allowed, remaining := rl.checkRateLimit("ip:203.0.113.7")
		assert.Equal(t, want.allowed, allowed, "request %d", i+1)
		assert.Equal(t, want.remaining, remaining, "request %d", i+1)
	}

	allowed, _ := rl.checkRateLimit("session:6f1c2b7e")
	assert.True(t, allowed, "a session and an IP never share a budget")
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 40*time.Millisecond)
	t.Cleanup(rl.Stop)

	allowed, _ := rl.checkRateLimit("ip:198.51.100.1")
	require.True(t, allowed)
	allowed, _ = rl.checkRateLimit("ip:198.51.100.1")
	require.False(t, allowed)

	assert.Eventually(t, func() bool {
		allowed, _ := rl.checkRateLimit("ip:198.51.100.1")
		return allowed
	}, time.Second, 10*time.Millisecond)
}

func TestRateLimiter_CheckoutPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(2, 1500*time.Millisecond)
	t.Cleanup(rl.Stop)

	router := gin.New()
	router.Use(RequestID(), rl.RateLimit())
	router.POST("/api/checkout/total", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.TotalResponse{Items: "AB", Total: 80})
	})

	send := func(ip, lang string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/checkout/total", strings.NewReader(`{"items": "AB"}`))
		req.RemoteAddr = ip + ":40000"
		if lang != "" {
			req.Header.Set("Accept-Language", lang)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := send("10.1.0.1", "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	require.Equal(t, http.StatusOK, send("10.1.0.1", "").Code)

	limited := send("10.1.0.1", "pt-BR")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "0", limited.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "2", limited.Header().Get("Retry-After"), "window rounds up to whole seconds")

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(limited.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeRateLimit, resp.Error)
	assert.Equal(t, "Muitas requisições, tente novamente mais tarde", resp.Message)

	assert.Equal(t, http.StatusOK, send("10.1.0.2", "").Code, "other clients keep their budget")
}

func TestRateLimiter_HistoryPerSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := service.NewSessionService(service.SessionConfig{SecretKey: "limiter-secret"})
	rl := NewRateLimiter(2, time.Minute)
	t.Cleanup(rl.Stop)

	router := gin.New()
	router.Use(RequestID(), SessionAuth(sessions, false), rl.SessionRateLimit())
	router.GET("/api/history", func(c *gin.Context) { c.Status(http.StatusOK) })

	open := func() string {
		session, err := sessions.Create()
		require.NoError(t, err)
		return session.Token
	}
	send := func(token string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
		req.RemoteAddr = "10.2.0.1:40000"
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	shopper, other := open(), open()
	assert.Equal(t, http.StatusOK, send(shopper))
	assert.Equal(t, http.StatusOK, send(shopper))
	assert.Equal(t, http.StatusTooManyRequests, send(shopper))

	// same IP
	assert.Equal(t, http.StatusOK, send(other))
	assert.Equal(t, http.StatusOK, send(""))
}

func TestSessionIdentifier(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		want      string
	}{
		{name: "checkout session", sessionID: "3f2b8c1e", want: "session:3f2b8c1e"},
		{name: "anonymous request", want: "ip:192.0.2.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/api/history", nil)
			c.Request.RemoteAddr = "192.0.2.10:5000"
			if tt.sessionID != "" {
				c.Set(string(SessionIDKey), tt.sessionID)
			}

			assert.Equal(t, tt.want, sessionIdentifier(c))
		})
	}
}

func TestRateLimiter_CleanupExpired(t *testing.T) {
	rl := NewShardedRateLimiter(5, 10*time.Millisecond, 2)
	t.Cleanup(rl.Stop)

	for _, id := range []string{"ip:10.3.0.1", "ip:10.3.0.2", "session:a1"} {
		rl.checkRateLimit(id)
	}
	total, _ := rl.Stats()
	require.Equal(t, 3, total)

	time.Sleep(30 * time.Millisecond)
	rl.checkRateLimit("session:fresh")
	rl.cleanupExpired()

	total, perShard := rl.Stats()
	assert.Equal(t, 1, total, "only the fresh visitor survives")
	assert.Len(t, perShard, 2)
}

func TestRateLimiter_Stop(t *testing.T) {
	before := runtime.NumGoroutine()

	for i := 0; i < 10; i++ {
		rl := NewRateLimiter(1, time.Minute)
		rl.Stop()
		rl.Stop()
	}

	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, 2*time.Second, 10*time.Millisecond)
}
