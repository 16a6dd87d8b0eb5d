package middleware

import (
	"errors"
	"net/http"
	"strings"

	"MerlinsForkAPI/internal/pkg/jwt"
	"MerlinsForkAPI/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UsernameKey is the gin context key holding the authenticated username
const UsernameKey = "username"

var (
	ErrMissingAuthorization = errors.New("authorization header is required")
	ErrAuthorizationFormat  = errors.New("invalid authorization format")
)

// BearerToken extracts the token from an "Authorization: Bearer <token>" header
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthorization
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrAuthorizationFormat
	}
	return parts[1], nil
}

// Authenticate validates the bearer access token on r
func Authenticate(r *http.Request, issuer *jwt.Issuer) (*jwt.Claims, error) {
	token, err := BearerToken(r)
	if err != nil {
		return nil, err
	}
	return issuer.Validate(token, jwt.AccessToken)
}

// JWTAuthMiddleware rejects requests without a valid bearer access token
func JWTAuthMiddleware(issuer *jwt.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := Authenticate(c.Request, issuer)
		switch {
		case errors.Is(err, ErrMissingAuthorization):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		case errors.Is(err, ErrAuthorizationFormat):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			return
		case err != nil:
			logger.Warn("Invalid JWT token",
				logger.Err(err),
				logger.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(UsernameKey, claims.Username)
		c.Next()
	}
}
