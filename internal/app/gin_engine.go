package app

import (
	"PagSeguroBridge/pkg/logger"
	"PagSeguroBridge/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(logger.CorrelationMiddleware(), metrics.GinMiddleware(), logger.AccessLog(), gin.Recovery())
	return engine
}
