package admin

import (
	"net/http"
	"net/url"
	"strings"

	"MerlinsForkAPI/internal/api/handlers"
	"MerlinsForkAPI/internal/api/middleware"
	"MerlinsForkAPI/internal/api/router/routes"
	"MerlinsForkAPI/internal/pkg/config"
	"MerlinsForkAPI/internal/pkg/jwt"
	"MerlinsForkAPI/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RouteInfo is a route table entry as shown on the overview page
type RouteInfo struct {
	Prefix string `json:"prefix"`
	Name   string `json:"name"`
}

// Site is the administration panel mounted under a single prefix.
// It dispatches on the path below that prefix.
type Site struct {
	cfg        *config.Config
	issuer     *jwt.Issuer
	table      *routes.Table
	loginURL   string
	systemInfo SystemInfoFunc
}

// NewSite creates the admin site. loginURL is the token endpoint the login
// page posts credentials to.
func NewSite(cfg *config.Config, issuer *jwt.Issuer, table *routes.Table, loginURL string) *Site {
	return &Site{
		cfg:        cfg,
		issuer:     issuer,
		table:      table,
		loginURL:   loginURL,
		systemInfo: GetSystemInfo,
	}
}

// WithSystemInfo overrides how host information is collected
func (s *Site) WithSystemInfo(fn SystemInfoFunc) *Site {
	s.systemInfo = fn
	return s
}

// Handle serves every request below the admin prefix
func (s *Site) Handle(c *gin.Context) {
	switch routes.SubPath(c) {
	case "":
		s.requireLogin(c, s.index)
	case "login/":
		s.login(c)
	case "system/":
		s.requireLogin(c, s.system)
	default:
		c.AbortWithStatus(http.StatusNotFound)
	}
}

// requireLogin redirects anonymous requests to the login page
func (s *Site) requireLogin(c *gin.Context, next gin.HandlerFunc) {
	claims, err := middleware.Authenticate(c.Request, s.issuer)
	if err != nil {
		c.Redirect(http.StatusFound, s.prefix()+"login/?next="+url.QueryEscape(c.Request.URL.Path))
		return
	}
	c.Set(middleware.UsernameKey, claims.Username)
	next(c)
}

func (s *Site) login(c *gin.Context) {
	next := c.Query("next")
	if !strings.HasPrefix(next, s.prefix()) {
		next = s.prefix()
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	err := loginTemplate.Execute(c.Writer, map[string]string{
		"AppName":  s.cfg.AppName,
		"LoginURL": s.loginURL,
		"Next":     next,
	})
	if err != nil {
		logger.Error("Failed to render admin login page", logger.Err(err))
	}
}

func (s *Site) index(c *gin.Context) {
	var table []RouteInfo
	for _, e := range s.table.Entries() {
		table = append(table, RouteInfo{Prefix: e.Prefix, Name: e.Name})
	}

	list := s.cfg.AllowList()
	c.JSON(http.StatusOK, gin.H{
		"app":  s.cfg.AppName,
		"user": c.GetString(middleware.UsernameKey),
		"allow_list": gin.H{
			"hosts":             list.Hosts,
			"origins":           list.Origins,
			"methods":           list.Methods,
			"headers":           list.Headers,
			"allow_credentials": list.AllowCredentials,
			"allow_all_origins": list.AllowAllOrigins,
		},
		"routes": table,
	})
}

func (s *Site) system(c *gin.Context) {
	info, err := s.systemInfo()
	if err != nil {
		handlers.HandleError(c, "Failed to get system info", err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (s *Site) prefix() string {
	if p, ok := s.table.Reverse(RouteName); ok {
		return p
	}
	return "/admin/"
}

// RouteName is the route table name the site is registered under
const RouteName = "admin"
