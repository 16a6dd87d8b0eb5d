package auth

import (
	"crypto/subtle"
	"errors"
	"io"
	"net/http"

	"MerlinsForkAPI/internal/api/handlers"
	"MerlinsForkAPI/internal/api/middleware"
	"MerlinsForkAPI/internal/pkg/config"
	"MerlinsForkAPI/internal/pkg/jwt"
	"MerlinsForkAPI/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 1 << 20

var ErrInvalidCredentials = errors.New("invalid credentials")

// Handler serves the token authentication endpoints
type Handler struct {
	auth   config.AuthConfig
	redact bool
	issuer *jwt.Issuer
}

// NewHandler creates an auth handler from configuration
func NewHandler(cfg *config.Config, issuer *jwt.Issuer) *Handler {
	return &Handler{
		auth:   cfg.Auth,
		redact: cfg.Logs.RedactSensitive,
		issuer: issuer,
	}
}

// RegisterRoutes registers the authentication routes
func RegisterRoutes(engine gin.IRouter, h *Handler) {
	authGroup := engine.Group("/api/v1/auth")
	{
		authGroup.POST("/login/", h.Login)
		authGroup.POST("/token/refresh/", h.RefreshToken)
		authGroup.GET("/me/", middleware.JWTAuthMiddleware(h.issuer), h.Me)
	}
}

// Login logs the submitted payload and headers, then exchanges valid
// credentials for an access/refresh token pair
func (h *Handler) Login(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		logger.Warn("Failed to read login request body", logger.Err(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	payload := parsePayload(c.ContentType(), body)

	logged := payload
	if h.redact {
		logged = redactPayload(payload)
	}
	logger.Info("Received login request with data", logger.Any("data", logged))
	logger.Info("Headers", logger.Any("headers", headerMap(c.Request.Header, h.redact)))

	username := stringField(payload, "username", "email")
	password := stringField(payload, "password")
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.checkCredentials(username, password); err != nil {
		logger.Warn("Failed authentication attempt",
			logger.String("username", username),
			logger.String("ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	pair, err := h.issuer.IssuePair(username)
	if err != nil {
		handlers.HandleError(c, "Failed to generate token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access":     pair.Access,
		"refresh":    pair.Refresh,
		"expires_in": int(pair.ExpiresIn.Seconds()),
		"user":       gin.H{"username": username},
	})
}

// RefreshToken exchanges a refresh token for a new token pair
func (h *Handler) RefreshToken(c *gin.Context) {
	var req struct {
		Refresh string `json:"refresh" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	pair, err := h.issuer.Refresh(req.Refresh)
	if err != nil {
		logger.Warn("Rejected refresh token", logger.Err(err), logger.String("ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Token is invalid or expired",
			"code":  "token_not_valid",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access":     pair.Access,
		"refresh":    pair.Refresh,
		"expires_in": int(pair.ExpiresIn.Seconds()),
	})
}

// Me returns the user the access token was issued to
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"username": c.GetString(middleware.UsernameKey)})
}

func (h *Handler) checkCredentials(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.auth.User)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(h.auth.Pass)) == 1
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}
