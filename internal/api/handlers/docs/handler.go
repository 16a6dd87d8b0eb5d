package docs

import (
	"fmt"
	"html/template"
	"net/http"

	"MerlinsForkAPI/internal/api/handlers"
	"MerlinsForkAPI/internal/api/middleware"
	"MerlinsForkAPI/internal/api/router/routes"
	"MerlinsForkAPI/internal/pkg/config"
	"MerlinsForkAPI/internal/pkg/jwt"
	"MerlinsForkAPI/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// Handler serves the generated schema and the documentation pages built on it
type Handler struct {
	cfg       config.DocsConfig
	endpoints []Endpoint
	issuer    *jwt.Issuer

	// Paths of the sibling views, linked from the pages
	swaggerPath string
	redocPath   string
}

// NewHandler creates a documentation handler. When the docs are not public
// the schema is only served to requests carrying a valid access token.
func NewHandler(cfg config.DocsConfig, endpoints []Endpoint, issuer *jwt.Issuer) *Handler {
	return &Handler{
		cfg:         cfg,
		endpoints:   SortedEndpoints(endpoints),
		issuer:      issuer,
		swaggerPath: "/swagger/",
		redocPath:   "/redoc/",
	}
}

// WithPaths overrides the links between the documentation views
func (h *Handler) WithPaths(swaggerPath, redocPath string) *Handler {
	h.swaggerPath = swaggerPath
	h.redocPath = redocPath
	return h
}

// Swagger serves the Swagger UI page, or the schema itself when called with
// ?format=openapi (JSON) or ?format=yaml
func (h *Handler) Swagger(c *gin.Context) {
	if routes.SubPath(c) != "" {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	h.setCacheHeaders(c)

	switch c.Query("format") {
	case "openapi", "json":
		h.serveSchema(c, false)
	case "yaml", "openapi-yaml":
		h.serveSchema(c, true)
	case "":
		h.render(c, swaggerUITemplate, h.pageData())
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Unsupported format %q", c.Query("format"))})
	}
}

// Redoc serves the ReDoc page
func (h *Handler) Redoc(c *gin.Context) {
	if routes.SubPath(c) != "" {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	h.setCacheHeaders(c)
	h.render(c, redocTemplate, h.pageData())
}

// Docs serves the browsable endpoint listing; schema/ below it returns the JSON schema
func (h *Handler) Docs(c *gin.Context) {
	switch routes.SubPath(c) {
	case "":
		h.render(c, docsTemplate, h.pageData())
	case "schema/":
		h.serveSchema(c, false)
	default:
		c.AbortWithStatus(http.StatusNotFound)
	}
}

func (h *Handler) serveSchema(c *gin.Context, asYAML bool) {
	if !h.cfg.Public {
		if _, err := middleware.Authenticate(c.Request, h.issuer); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided."})
			return
		}
	}

	doc := Build(h.cfg, c.Request.Host, requestScheme(c.Request), h.endpoints)

	if !asYAML {
		c.JSON(http.StatusOK, doc)
		return
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		handlers.HandleError(c, "Failed to encode schema", err)
		return
	}
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
}

type pageData struct {
	Title       string
	Description string
	Version     string
	SchemaURL   string
	SwaggerURL  string
	RedocURL    string
	Endpoints   []Endpoint
}

func (h *Handler) pageData() pageData {
	return pageData{
		Title:       h.cfg.Title,
		Description: h.cfg.Description,
		Version:     h.cfg.DefaultVersion,
		SchemaURL:   h.swaggerPath + "?format=openapi",
		SwaggerURL:  h.swaggerPath,
		RedocURL:    h.redocPath,
		Endpoints:   h.endpoints,
	}
}

func (h *Handler) render(c *gin.Context, tmpl *template.Template, data pageData) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := tmpl.Execute(c.Writer, data); err != nil {
		logger.Error("Failed to render documentation page", logger.Err(err))
	}
}

// setCacheHeaders applies the configured cache timeout; zero disables caching
func (h *Handler) setCacheHeaders(c *gin.Context) {
	if h.cfg.CacheTimeout <= 0 {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, max-age=0")
		c.Header("Expires", "0")
		return
	}
	c.Header("Cache-Control", fmt.Sprintf("max-age=%d", h.cfg.CacheTimeout))
}

func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
