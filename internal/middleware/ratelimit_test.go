package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	router := gin.New()
	router.POST("/auth/login", RateLimit(NewLimiter(1)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("192.0.2.10:1234"))
	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.10:1234"))
	assert.Equal(t, http.StatusOK, send("192.0.2.11:1234"), "budgets are per client")
}
