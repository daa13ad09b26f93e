package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themekit/internal/metrics"
)

// MetricsMiddleware records request counts and latency per route pattern.
// Unmatched requests are grouped under "unmatched" to bound label cardinality.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(route, c.Writer.Status(), time.Since(start))
	}
}
