package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// LivenessHandler reports up while the process serves requests.
func LivenessHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": StatusUp})
	}
}

// ReadinessHandler answers 503 only when a required dependency is down. A degraded
// bridge still reconciles and serves checkouts, so it stays in rotation.
func ReadinessHandler(registry *Registry, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		response := registry.CheckAll(ctx)

		code := http.StatusOK
		if response.Status == StatusDown {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, response)
	}
}
