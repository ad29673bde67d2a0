package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitBlocksAfterLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter, err := middleware.NewRateLimiter("2-M", nil)
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.RateLimit(limiter))
	router.POST("/things", func(c *gin.Context) { c.Status(http.StatusCreated) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodPost, "/things", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if i == 2 {
			assert.JSONEq(t, `{"error":{"kind":"rate_limited","message":"Too many requests. Please try again later."}}`, w.Body.String())
		}
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
}

func TestNewRateLimiterRejectsBadRate(t *testing.T) {
	_, err := middleware.NewRateLimiter("lots", nil)
	assert.Error(t, err)
}
