package middleware

import (
	"net/http"

	"MerlinsForkAPI/internal/pkg/allowlist"
	"MerlinsForkAPI/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AllowedHostsMiddleware rejects requests whose Host header is not in the allow-list
func AllowedHostsMiddleware(hosts *allowlist.Hosts) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hosts.IsTrusted(c.Request) {
			c.Next()
			return
		}

		logger.Warn("Invalid HTTP_HOST header",
			logger.String("host", c.Request.Host),
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()))

		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid HTTP_HOST header"})
	}
}
