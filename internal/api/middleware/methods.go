package middleware

import (
	"fmt"
	"net/http"

	"MerlinsForkAPI/internal/pkg/allowlist"
	"MerlinsForkAPI/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AllowedMethodsMiddleware answers 405 to any method outside the allow-list,
// whatever route it targets
func AllowedMethodsMiddleware(methods *allowlist.Methods) gin.HandlerFunc {
	return func(c *gin.Context) {
		if methods.IsTrusted(c.Request) {
			c.Next()
			return
		}

		logger.Warn("Rejected HTTP method",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path))

		c.Header("Allow", methods.Allow())
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{
			"error": fmt.Sprintf("Method %q not allowed.", c.Request.Method),
		})
	}
}
