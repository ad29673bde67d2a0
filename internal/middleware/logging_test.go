package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStructuredLoggingKeepsValidRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(middleware.StructuredLoggingMiddleware(logger))
	router.GET("/ping", func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("inside")
		c.Status(http.StatusNoContent)
	})

	requestID := uuid.NewString()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, requestID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, requestID, w.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"`+requestID+`"`)
	assert.Contains(t, buf.String(), `"msg":"inside"`)
	assert.Contains(t, buf.String(), `"msg":"Request completed"`)
}

func TestStructuredLoggingReplacesInvalidRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "not-a-uuid")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	_, err := uuid.Parse(w.Header().Get(middleware.RequestIDHeader))
	assert.NoError(t, err)
}

func TestGetLoggerFromCtxFallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))
}
