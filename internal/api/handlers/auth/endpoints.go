package auth

import (
	"net/http"

	"MerlinsForkAPI/internal/api/handlers/docs"
)

// Endpoints describes the authentication routes for the API documentation
func Endpoints() []docs.Endpoint {
	tokenPair := &docs.Schema{
		Type:     "object",
		Required: []string{"access", "refresh"},
		Properties: map[string]*docs.Schema{
			"access":     {Type: "string"},
			"refresh":    {Type: "string"},
			"expires_in": {Type: "integer"},
		},
	}

	return []docs.Endpoint{
		{
			Method:      http.MethodPost,
			Path:        "/api/v1/auth/login/",
			OperationID: "auth_login_create",
			Summary:     "Obtain an access and refresh token",
			Description: "Accepts a username (or email) and password. The request payload and headers are logged.",
			Tag:         "auth",
			Body:        docs.Object([]string{"username", "password"}, "email"),
			Responses: map[string]docs.Response{
				"200": {Description: "Token pair", Schema: tokenPair},
				"400": {Description: "Malformed request"},
				"401": {Description: "Invalid credentials"},
			},
		},
		{
			Method:      http.MethodPost,
			Path:        "/api/v1/auth/token/refresh/",
			OperationID: "auth_token_refresh_create",
			Summary:     "Exchange a refresh token for a new token pair",
			Tag:         "auth",
			Body:        docs.Object([]string{"refresh"}),
			Responses: map[string]docs.Response{
				"200": {Description: "Token pair", Schema: tokenPair},
				"401": {Description: "Refresh token invalid or expired"},
			},
		},
		{
			Method:      http.MethodGet,
			Path:        "/api/v1/auth/me/",
			OperationID: "auth_me_read",
			Summary:     "Return the authenticated user",
			Tag:         "auth",
			Secured:     true,
			Responses: map[string]docs.Response{
				"200": {Description: "Current user", Schema: docs.Object([]string{"username"})},
				"401": {Description: "Missing or invalid access token"},
			},
		},
	}
}
