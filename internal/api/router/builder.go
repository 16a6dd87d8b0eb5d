package router

import (
	"context"
	"time"

	"MerlinsForkAPI/internal/api/handlers/admin"
	"MerlinsForkAPI/internal/pkg/config"
	"MerlinsForkAPI/internal/pkg/logger"
)

// Builder provides a fluent interface for constructing a router
type Builder struct {
	router *Router
	err    error
}

// NewBuilder creates a new router builder
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{
		router: New(cfg),
	}
}

// WithSystemInfo replaces the host information source of the admin site
func (b *Builder) WithSystemInfo(fn admin.SystemInfoFunc) *Builder {
	b.router.adminSite.WithSystemInfo(fn)
	return b
}

// WithAllRoutes adds all routes and initializes the router
func (b *Builder) WithAllRoutes() *Builder {
	if b.err == nil {
		b.err = b.router.Initialize()
	}
	return b
}

// GetRouter returns the underlying router
func (b *Builder) GetRouter() *Router {
	return b.router
}

// Start starts the HTTP server
func (b *Builder) Start() error {
	return b.router.Start()
}

// Build returns the builder or the first error hit while assembling it
func (b *Builder) Build() (*Builder, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b, nil
}

// Shutdown stops the HTTP server, waiting at most timeout for in-flight requests
func (b *Builder) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := b.router.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", logger.Err(err))
		return err
	}

	logger.Info("HTTP server stopped")
	return nil
}
