package logger

import (
	"log/slog"
	"time"

	"PagSeguroBridge/pkg/correlation"

	"github.com/gin-gonic/gin"
)

// CorrelationMiddleware reuses a well-formed X-Correlation-ID from the request or
// generates one, and echoes it back in the response header.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		corrID := correlation.FromHeader(c.GetHeader(correlation.HeaderName))

		c.Request = c.Request.WithContext(correlation.WithID(c.Request.Context(), corrID))
		c.Header(correlation.HeaderName, corrID)

		c.Next()
	}
}

// AccessLog logs one line per request. Bodies are not logged: checkout responses carry
// buyer data and gateway codes.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.InfoContext(c.Request.Context(), "HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
