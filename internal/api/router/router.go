package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"MerlinsForkAPI/internal/api/handlers/admin"
	"MerlinsForkAPI/internal/api/handlers/auth"
	"MerlinsForkAPI/internal/api/handlers/docs"
	"MerlinsForkAPI/internal/api/middleware"
	"MerlinsForkAPI/internal/api/router/routes"
	"MerlinsForkAPI/internal/pkg/allowlist"
	"MerlinsForkAPI/internal/pkg/config"
	"MerlinsForkAPI/internal/pkg/jwt"
	"MerlinsForkAPI/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router encapsulates the HTTP router functionality
type Router struct {
	config *config.Config
	engine *gin.Engine
	table  *routes.Table
	server *http.Server

	issuer      *jwt.Issuer
	authHandler *auth.Handler
	docsHandler *docs.Handler
	adminSite   *admin.Site
}

// New creates a new router instance with the given configuration
func New(cfg *config.Config) *Router {
	if cfg.Logs.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	issuer := jwt.NewIssuer(cfg.Auth.JWTSecret,
		config.Seconds(cfg.Auth.AccessTokenLifetime),
		config.Seconds(cfg.Auth.RefreshTokenLifetime))

	r := &Router{
		config:      cfg,
		engine:      engine,
		table:       routes.NewTable(),
		issuer:      issuer,
		authHandler: auth.NewHandler(cfg, issuer),
		docsHandler: docs.NewHandler(cfg.Docs, Endpoints(), issuer),
	}
	r.adminSite = admin.NewSite(cfg, issuer, r.table, "/api/v1/auth/login/")

	return r
}

// Endpoints lists every API operation published in the documentation
func Endpoints() []docs.Endpoint {
	return append(auth.Endpoints(), docs.Endpoint{
		Method:      http.MethodGet,
		Path:        "/health",
		OperationID: "health_read",
		Summary:     "Liveness probe",
		Tag:         "health",
	})
}

// Initialize sets up the router with middlewares and routes
func (r *Router) Initialize() error {
	if err := r.registerMiddleware(); err != nil {
		return err
	}

	if err := r.registerTableRoutes(); err != nil {
		return err
	}

	auth.RegisterRoutes(r.engine, r.authHandler)
	r.registerRootAPIEndpoint()

	for _, route := range r.engine.Routes() {
		logger.Debug("Registered route",
			logger.String("method", route.Method),
			logger.String("path", route.Path))
	}

	return nil
}

// registerMiddleware installs request filtering driven by the allow-lists
func (r *Router) registerMiddleware() error {
	list := r.config.AllowList()

	hosts := allowlist.NewHosts(list.Hosts)
	methods := allowlist.NewMethods(list.Methods)

	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestLoggerMiddleware())
	r.engine.Use(middleware.AllowedHostsMiddleware(hosts))
	r.engine.Use(middleware.AllowedMethodsMiddleware(methods))

	lists := []allowlist.Allowlist{hosts, methods}

	if r.config.CORS.Enabled {
		corsMiddleware, err := middleware.CORSMiddleware(list, config.Seconds(r.config.CORS.MaxAge))
		if err != nil {
			return err
		}
		r.engine.Use(corsMiddleware)
		lists = append(lists, allowlist.NewOrigins(list.Origins))
	}

	for _, l := range lists {
		for _, msg := range l.LogMessages() {
			logger.Debug(msg)
		}
	}

	return nil
}

// registerTableRoutes registers the admin site and documentation views
func (r *Router) registerTableRoutes() error {
	entries := []routes.Entry{
		{Prefix: "/admin/", Handler: r.adminSite.Handle, Name: admin.RouteName},
		{Prefix: "/docs/", Handler: r.docsHandler.Docs, Name: "api-docs"},
		{Prefix: "/swagger/", Handler: r.docsHandler.Swagger, Name: "schema-swagger-ui"},
		{Prefix: "/redoc/", Handler: r.docsHandler.Redoc, Name: "schema-redoc"},
	}

	for _, e := range entries {
		if err := r.table.Register(e.Prefix, e.Handler, e.Name); err != nil {
			return fmt.Errorf("failed to register route table: %w", err)
		}
	}

	swagger, _ := r.table.Reverse("schema-swagger-ui")
	redoc, _ := r.table.Reverse("schema-redoc")
	r.docsHandler.WithPaths(swagger, redoc)

	r.table.Mount(r.engine)
	return nil
}

// registerRootAPIEndpoint provides a simple API health check endpoint
func (r *Router) registerRootAPIEndpoint() {
	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"app":     r.config.AppName,
			"version": r.config.Docs.DefaultVersion,
		})
	})

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Table returns the prefix route table
func (r *Router) Table() *routes.Table {
	return r.table
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

// Start runs the HTTP server until Shutdown is called
func (r *Router) Start() error {
	cfg := r.config.Server
	r.server = &http.Server{
		Addr:           cfg.Addr(),
		Handler:        r.engine,
		ReadTimeout:    config.Seconds(cfg.ReadTimeout),
		WriteTimeout:   config.Seconds(cfg.WriteTimeout),
		IdleTimeout:    config.Seconds(cfg.IdleTimeout),
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	logger.Info("Starting HTTP server", logger.String("address", cfg.Addr()))

	if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (r *Router) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}
