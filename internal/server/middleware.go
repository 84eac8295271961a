package server

import (
	"time"

	"github.com/gin-gonic/gin"
)

// MockLatencyMiddleware delays every request by a fixed duration. It
// stands in for the latency of the backend this store fronts, so the
// async ordering paths stay exercised in development.
func MockLatencyMiddleware(delay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-c.Request.Context().Done():
			}
		}
		c.Next()
	}
}
