package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimitMiddleware_FixedWindow(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	// rps=0, burst=2 -> 2 requests allowed per window
	g := gin.New()
	g.GET("/", RedisRateLimitMiddleware(client, 0, 2, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.5.5.5:1234"
		rw := httptest.NewRecorder()
		g.ServeHTTP(rw, req)
		require.Equal(t, http.StatusOK, rw.Code, "request %d should be allowed", i)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.5.5.5:1234"
	rw := httptest.NewRecorder()
	g.ServeHTTP(rw, req)
	require.Equal(t, http.StatusTooManyRequests, rw.Code)
}

func TestRedisRateLimitMiddleware_NilClientFallsBack(t *testing.T) {
	g := gin.New()
	g.GET("/", RedisRateLimitMiddleware(nil, 100, 100, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.6.6.6:1234"
	rw := httptest.NewRecorder()
	g.ServeHTTP(rw, req)
	require.Equal(t, http.StatusOK, rw.Code)
}
