package middleware

import (
	"time"

	"coursehub/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records latency and status of every request by route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
