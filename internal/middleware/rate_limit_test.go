package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestAuthRateLimitConfig(t *testing.T) {
	cfg := AuthRateLimitConfig(10)
	if cfg.RequestsPerMinute != 10 {
		t.Errorf("expected 10 requests per minute, got %d", cfg.RequestsPerMinute)
	}
	if cfg.KeyPrefix == DefaultRateLimitConfig().KeyPrefix {
		t.Error("auth limiter must use its own key prefix so auth attempts do not share the general budget")
	}
}

func TestRateLimitNilClientFailsOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(nil, AuthRateLimitConfig(1)))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected fail-open 200 without redis, got %d", i, w.Code)
		}
	}
}
