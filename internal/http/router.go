package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas del reporte.
func NewRouter(logger *zap.Logger, reportH *ReportHandler) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y request id.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), requestIDMiddleware())

	r.GET("/healthz", reportH.Health)
	r.GET("/report", reportH.GetReport)
	r.GET("/profiles", reportH.ListProfiles)
	r.GET("/profiles/:type", reportH.GetProfile)
	r.GET("/metrics/derived", reportH.GetDerivedMetrics)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// requestIDMiddleware propaga o genera un X-Request-ID por respuesta.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
