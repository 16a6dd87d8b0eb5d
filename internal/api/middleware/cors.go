package middleware

import (
	"fmt"
	"time"

	"MerlinsForkAPI/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware builds the cross-origin middleware from the configured allow-list.
// Requests from an origin outside the list are answered with 403 and carry no
// Access-Control-Allow-* headers.
func CORSMiddleware(list config.AllowList, maxAge time.Duration) (gin.HandlerFunc, error) {
	corsConfig := cors.Config{
		AllowAllOrigins:  list.AllowAllOrigins,
		AllowMethods:     list.Methods,
		AllowHeaders:     list.Headers,
		AllowCredentials: list.AllowCredentials,
		MaxAge:           maxAge,
	}
	if !list.AllowAllOrigins {
		corsConfig.AllowOrigins = list.Origins
	}

	if err := corsConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid CORS configuration: %w", err)
	}

	return cors.New(corsConfig), nil
}
