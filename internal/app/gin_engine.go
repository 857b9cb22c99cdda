package app

import (
	"payments-api/pkg/logger"
	"payments-api/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// NewGinEngine builds the gin engine with the shared middleware chain.
func NewGinEngine(l *logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		logger.CorrelationMiddleware(),
		metrics.GinMiddleware(),
		l.GinRequestLogger(),
	)

	return engine
}
