package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mymessages-post-service/internal/metrics"
)

func Metrics(m metrics.MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := strconv.Itoa(c.Writer.Status())

		m.IncrementHTTPRequests(c.Request.Method, path, status)
		m.RecordHTTPRequestDuration(c.Request.Method, path, status, time.Since(start))
	}
}
