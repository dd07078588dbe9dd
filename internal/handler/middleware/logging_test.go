//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.LogConfig{Level: "info", TimeFormat: "2006-01-02 15:04:05.000"}

	t.Run("success: request passes through with a request id attached", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.LoggingMiddleware(cfg))

		var requestID string
		router.GET("/ping", func(c *gin.Context) {
			requestID = middleware.GetRequestID(c)
			c.Status(http.StatusNoContent)
		})

		w := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.NotEmpty(t, requestID)
	})

	t.Run("success: each request gets its own request id", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.LoggingMiddleware(cfg))

		seen := make(map[string]struct{})
		router.GET("/ping", func(c *gin.Context) {
			seen[middleware.GetRequestID(c)] = struct{}{}
			c.Status(http.StatusNoContent)
		})

		for range 2 {
			w := httptest.NewRecorder()
			req, err := http.NewRequest(http.MethodGet, "/ping", nil)
			require.NoError(t, err)
			router.ServeHTTP(w, req)
		}

		assert.Len(t, seen, 2)
	})
}
