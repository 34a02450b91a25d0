package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBody(t *testing.T, maxBytes int64) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/echo", BodySizeLimiter(maxBytes), func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "can't read body"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"size": len(body)})
	})

	return r
}

func TestBodySizeLimiterUnderLimit(t *testing.T) {
	r := setupBody(t, 64)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("small"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBodySizeLimiterDeclaredTooLarge(t *testing.T) {
	r := setupBody(t, 16)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 64)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Oversized Content-Length never reaches the handler
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "exceeds limit")
}

func TestBodySizeLimiterChunkedTooLarge(t *testing.T) {
	r := setupBody(t, 16)

	// No declared length, the capped reader has to stop the handler instead
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 64)))
	req.ContentLength = -1
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
