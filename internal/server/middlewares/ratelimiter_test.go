package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventtickets/eventtickets/internal/server/handlers/api"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter("2-M"))
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "203.0.113.7:51000"
		last = httptest.NewRecorder()
		r.ServeHTTP(last, req)
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Contains(t, last.Body.String(), api.CodeRateLimited)
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimiter_PerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter("1-H"))
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	for _, addr := range []string{"203.0.113.7:51000", "203.0.113.8:51000"} {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, addr)
	}
}

func TestRateLimiter_PanicsOnBadRate(t *testing.T) {
	assert.Panics(t, func() { RateLimiter("lots") })
}
