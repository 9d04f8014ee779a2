package middleware

import (
	"time"

	"coursehub/pkg/response"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"
)

// NewLimiter allows perSecond requests per client IP.
func NewLimiter(perSecond float64) *limiter.Limiter {
	lmt := tollbooth.NewLimiter(perSecond, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("too many requests, please try again later")
	return lmt
}

// RateLimit rejects requests over lmt's budget with 429.
func RateLimit(lmt *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if httpErr := tollbooth.LimitByRequest(lmt, c.Writer, c.Request); httpErr != nil {
			response.TooManyRequests(c, httpErr.Message)
			c.Abort()
			return
		}
		c.Next()
	}
}
