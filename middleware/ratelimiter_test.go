package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter(perMinute, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/login", RateLimit(perMinute, burst), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func loginFrom(router *gin.Engine, addr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = addr
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit_EnforcesConfiguredBurst(t *testing.T) {
	router := rateLimitedRouter(1, 2)

	assert.Equal(t, http.StatusOK, loginFrom(router, "10.0.0.1:5000").Code)
	assert.Equal(t, http.StatusOK, loginFrom(router, "10.0.0.1:5000").Code)
	assert.Equal(t, http.StatusTooManyRequests, loginFrom(router, "10.0.0.1:5000").Code)
}

func TestRateLimit_BucketsPerClient(t *testing.T) {
	router := rateLimitedRouter(1, 1)

	assert.Equal(t, http.StatusOK, loginFrom(router, "10.0.0.1:5000").Code)
	assert.Equal(t, http.StatusTooManyRequests, loginFrom(router, "10.0.0.1:5000").Code)

	// a different client still has its full burst
	assert.Equal(t, http.StatusOK, loginFrom(router, "10.0.0.2:5000").Code)
}
