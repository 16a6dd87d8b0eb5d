package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"MerlinsForkAPI/internal/pkg/config"
	"MerlinsForkAPI/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testEndpoints = []Endpoint{
	{
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/login/",
		OperationID: "auth_login",
		Summary:     "Obtain a token pair",
		Tag:         "auth",
		Body:        Object([]string{"username", "password"}),
		Responses: map[string]Response{
			"200": {Description: "Token pair"},
			"401": {Description: "Invalid credentials"},
		},
	},
	{
		Method:      http.MethodGet,
		Path:        "/api/v1/auth/me/",
		OperationID: "auth_me",
		Summary:     "Current user",
		Tag:         "auth",
		Secured:     true,
	},
}

func newDocsEngine(cfg config.DocsConfig, issuer *jwt.Issuer) *gin.Engine {
	h := NewHandler(cfg, testEndpoints, issuer)
	engine := gin.New()
	engine.GET("/docs/*path", h.Docs)
	engine.GET("/swagger/*path", h.Swagger)
	engine.GET("/redoc/*path", h.Redoc)
	return engine
}

func get(engine http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Host = "localhost:8000"
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestBuild(t *testing.T) {
	cfg := config.GetDefaultConfig().Docs
	doc := Build(cfg, "localhost:8000", "http", testEndpoints)

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, Info{Title: "API Documentation", Description: "API documentation", Version: "v1"}, doc.Info)
	assert.Equal(t, []string{"http"}, doc.Schemes)

	login := doc.Paths["/api/v1/auth/login/"]["post"]
	require.NotNil(t, login)
	assert.Equal(t, []string{"auth"}, login.Tags)
	require.Len(t, login.Parameters, 1)
	assert.Equal(t, []string{"username", "password"}, login.Parameters[0].Schema.Required)
	assert.Empty(t, login.Security)

	me := doc.Paths["/api/v1/auth/me/"]["get"]
	require.NotNil(t, me)
	assert.Equal(t, []map[string][]string{{"Bearer": {}}}, me.Security)
	assert.Contains(t, me.Responses, "200")
}

func TestSwagger_Views(t *testing.T) {
	engine := newDocsEngine(config.GetDefaultConfig().Docs, nil)

	tests := []struct {
		name            string
		target          string
		expectedStatus  int
		expectedType    string
		expectedContent string
	}{
		{name: "swagger ui", target: "/swagger/", expectedStatus: http.StatusOK, expectedType: "text/html", expectedContent: "swagger-ui-bundle.js"},
		{name: "swagger json", target: "/swagger/?format=openapi", expectedStatus: http.StatusOK, expectedType: "application/json", expectedContent: `"swagger":"2.0"`},
		{name: "swagger yaml", target: "/swagger/?format=yaml", expectedStatus: http.StatusOK, expectedType: "application/yaml", expectedContent: "swagger: \"2.0\""},
		{name: "unknown format", target: "/swagger/?format=xml", expectedStatus: http.StatusNotFound},
		{name: "redoc", target: "/redoc/", expectedStatus: http.StatusOK, expectedType: "text/html", expectedContent: `spec-url="/swagger/?format=openapi"`},
		{name: "docs", target: "/docs/", expectedStatus: http.StatusOK, expectedType: "text/html", expectedContent: "/api/v1/auth/login/"},
		{name: "docs schema", target: "/docs/schema/", expectedStatus: http.StatusOK, expectedType: "application/json", expectedContent: `"title":"API Documentation"`},
		{name: "swagger subpath", target: "/swagger/missing", expectedStatus: http.StatusNotFound},
		{name: "docs subpath", target: "/docs/missing/", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(engine, tt.target)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedType != "" {
				assert.Contains(t, w.Header().Get("Content-Type"), tt.expectedType)
			}
			if tt.expectedContent != "" {
				assert.Contains(t, w.Body.String(), tt.expectedContent)
			}
		})
	}
}

func TestSwagger_CacheHeaders(t *testing.T) {
	cfg := config.GetDefaultConfig().Docs

	w := get(newDocsEngine(cfg, nil), "/swagger/")
	assert.Equal(t, "no-cache, no-store, must-revalidate, max-age=0", w.Header().Get("Cache-Control"))

	w = get(newDocsEngine(cfg, nil), "/redoc/")
	assert.Equal(t, "no-cache, no-store, must-revalidate, max-age=0", w.Header().Get("Cache-Control"))

	cfg.CacheTimeout = 60
	w = get(newDocsEngine(cfg, nil), "/swagger/")
	assert.Equal(t, "max-age=60", w.Header().Get("Cache-Control"))
}

func TestSwagger_SchemaContents(t *testing.T) {
	engine := newDocsEngine(config.GetDefaultConfig().Docs, nil)

	w := get(engine, "/swagger/?format=openapi", "X-Forwarded-Proto", "https")
	require.Equal(t, http.StatusOK, w.Code)

	var doc Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "localhost:8000", doc.Host)
	assert.Equal(t, []string{"https"}, doc.Schemes)
	assert.Len(t, doc.Paths, 2)

	w = get(engine, "/swagger/?format=yaml")
	require.Equal(t, http.StatusOK, w.Code)
	var fromYAML Document
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &fromYAML))
	assert.Equal(t, "API Documentation", fromYAML.Info.Title)
}

func TestSwagger_PrivateSchema(t *testing.T) {
	cfg := config.GetDefaultConfig().Docs
	cfg.Public = false
	issuer := jwt.NewIssuer("secret", time.Hour, time.Hour)
	engine := newDocsEngine(cfg, issuer)

	w := get(engine, "/swagger/?format=openapi")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// the UI page itself stays reachable
	w = get(engine, "/swagger/")
	assert.Equal(t, http.StatusOK, w.Code)

	pair, err := issuer.IssuePair("merlin")
	require.NoError(t, err)
	w = get(engine, "/swagger/?format=openapi", "Authorization", "Bearer "+pair.Access)
	assert.Equal(t, http.StatusOK, w.Code)
}
