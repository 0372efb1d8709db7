package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/starkdipesh/portfolio-api/pkg/metrics"
)

// Metrics records per-route request counts and latencies. Routes are labeled
// by the matched pattern (e.g. /api/projects/:id), not the raw path, to keep
// label cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, status).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
