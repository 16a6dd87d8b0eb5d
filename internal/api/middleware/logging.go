package middleware

import (
	"time"

	"MerlinsForkAPI/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs one line per completed HTTP request
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("HTTP Request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.String("client_ip", c.ClientIP()),
			logger.Duration("latency", time.Since(start)),
		)
	}
}
