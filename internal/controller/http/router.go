package http

import (
	"PagSeguroBridge/internal/controller/http/handlers"
	"PagSeguroBridge/pkg/health"
	"PagSeguroBridge/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type Router struct {
	checkout       handlers.CheckoutHandler
	reconcile      handlers.ReconcileHandler
	healthRegistry *health.Registry
}

func (r *Router) SetUp(engine *gin.Engine) {
	// Health checks (Kubernetes-style)
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	engine.POST("/checkout/:order_id", r.checkout.Checkout)
	engine.POST("/reconcile", r.reconcile.Reconcile)
}

func NewRouter(
	checkout handlers.CheckoutHandler,
	reconcile handlers.ReconcileHandler,
	healthRegistry *health.Registry,
) *Router {
	return &Router{
		checkout:       checkout,
		reconcile:      reconcile,
		healthRegistry: healthRegistry,
	}
}
