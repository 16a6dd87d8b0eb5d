package handlers

import (
	"net/http"

	"MerlinsForkAPI/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// HandleError logs err with the request path and answers 500 with message.
// The underlying error is never sent to the client.
func HandleError(c *gin.Context, message string, err error) {
	logger.Error(message,
		logger.String("path", c.Request.URL.Path),
		logger.Err(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error": message,
	})
}
