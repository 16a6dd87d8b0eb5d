package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"MerlinsForkAPI/internal/pkg/allowlist"
	"MerlinsForkAPI/internal/pkg/config"
	"MerlinsForkAPI/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newEngine wires a single handler behind the given middleware
func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(mw...)
	handler := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut} {
		engine.Handle(method, "/ping", handler)
	}
	return engine
}

func serve(engine http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAllowedHostsMiddleware(t *testing.T) {
	cfg := config.GetDefaultConfig()
	engine := newEngine(AllowedHostsMiddleware(allowlist.NewHosts(cfg.Security.AllowedHosts)))

	tests := []struct {
		name           string
		host           string
		expectedStatus int
	}{
		{name: "localhost with port", host: "localhost:8000", expectedStatus: http.StatusOK},
		{name: "loopback", host: "127.0.0.1", expectedStatus: http.StatusOK},
		{name: "any address", host: "0.0.0.0:8000", expectedStatus: http.StatusOK},
		{name: "docker host", host: "host.docker.internal", expectedStatus: http.StatusOK},
		{name: "foreign host", host: "evil.example.com", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Host = tt.host

			w := serve(engine, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusBadRequest {
				assert.JSONEq(t, `{"error":"Invalid HTTP_HOST header"}`, w.Body.String())
			}
		})
	}
}

func TestAllowedMethodsMiddleware(t *testing.T) {
	cfg := config.GetDefaultConfig()
	engine := newEngine(AllowedMethodsMiddleware(allowlist.NewMethods(cfg.CORS.AllowedMethods)))

	for _, method := range []string{http.MethodTrace, http.MethodConnect, http.MethodHead} {
		t.Run(method, func(t *testing.T) {
			w := serve(engine, httptest.NewRequest(method, "/ping", nil))
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, "DELETE, GET, OPTIONS, PATCH, POST, PUT", w.Header().Get("Allow"))
		})
	}

	// unregistered paths are rejected the same way
	w := serve(engine, httptest.NewRequest(http.MethodTrace, "/nowhere", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = serve(engine, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func newCORSEngine(t *testing.T) *gin.Engine {
	t.Helper()
	mw, err := CORSMiddleware(config.GetDefaultConfig().AllowList(), time.Hour)
	require.NoError(t, err)
	return newEngine(mw)
}

func corsRequest(method, origin string) *http.Request {
	req := httptest.NewRequest(method, "/ping", nil)
	req.Host = "localhost:8000"
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	return req
}

func TestCORSMiddleware_AllowedOrigins(t *testing.T) {
	engine := newCORSEngine(t)

	for _, origin := range config.GetDefaultConfig().CORS.AllowedOrigins {
		t.Run(origin, func(t *testing.T) {
			w := serve(engine, corsRequest(http.MethodGet, origin))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	engine := newCORSEngine(t)

	for _, origin := range []string{"http://evil.example.com", "http://localhost:3001", "https://localhost:3000"} {
		t.Run(origin, func(t *testing.T) {
			w := serve(engine, corsRequest(http.MethodGet, origin))

			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestCORSMiddleware_NoOriginPassesThrough(t *testing.T) {
	w := serve(newCORSEngine(t), corsRequest(http.MethodGet, ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	req := corsRequest(http.MethodOptions, "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type,authorization")

	w := serve(newCORSEngine(t), req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	methods := w.Header().Get("Access-Control-Allow-Methods")
	for _, m := range []string{"DELETE", "GET", "OPTIONS", "PATCH", "POST", "PUT"} {
		assert.Contains(t, methods, m)
	}
	headers := strings.ToLower(w.Header().Get("Access-Control-Allow-Headers"))
	for _, h := range []string{"authorization", "content-type", "x-csrftoken", "x-requested-with"} {
		assert.Contains(t, headers, h)
	}
}

func TestCORSMiddleware_InvalidConfig(t *testing.T) {
	list := config.GetDefaultConfig().AllowList()
	list.Origins = nil

	_, err := CORSMiddleware(list, 0)
	assert.ErrorContains(t, err, "invalid CORS configuration")
}

func TestJWTAuthMiddleware(t *testing.T) {
	issuer := jwt.NewIssuer("secret", time.Hour, time.Hour)
	pair, err := issuer.IssuePair("merlin")
	require.NoError(t, err)

	engine := gin.New()
	engine.GET("/me", JWTAuthMiddleware(issuer), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(UsernameKey))
	})

	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
		expectedBody   string
	}{
		{name: "valid token", authorization: "Bearer " + pair.Access, expectedStatus: http.StatusOK, expectedBody: "merlin"},
		{name: "missing header", expectedStatus: http.StatusUnauthorized, expectedBody: `{"error":"Authorization header is required"}`},
		{name: "wrong scheme", authorization: "Basic abc", expectedStatus: http.StatusUnauthorized, expectedBody: `{"error":"Invalid authorization format"}`},
		{name: "refresh token", authorization: "Bearer " + pair.Refresh, expectedStatus: http.StatusUnauthorized, expectedBody: `{"error":"Invalid or expired token"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}

			w := serve(engine, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}
