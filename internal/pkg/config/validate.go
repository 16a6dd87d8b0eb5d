package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// KnownMethods are the HTTP methods an allow-list may name
var KnownMethods = []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "TRACE", "CONNECT"}

var (
	ErrInvalidHost   = errors.New("invalid allowed host")
	ErrInvalidOrigin = errors.New("invalid allowed origin")
	ErrInvalidMethod = errors.New("invalid allowed method")
	ErrInvalidHeader = errors.New("invalid allowed header")
)

// Validate reports every syntactically invalid value in the configuration
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port out of range: %d", c.Server.Port))
	}

	for _, host := range c.Security.AllowedHosts {
		if err := validateHost(host); err != nil {
			errs = append(errs, err)
		}
	}

	for _, origin := range c.CORS.Origins() {
		if err := validateOrigin(origin); err != nil {
			errs = append(errs, err)
		}
	}
	if c.CORS.AllowAllOrigins && c.CORS.AllowCredentials {
		errs = append(errs, fmt.Errorf("%w: credentials cannot be allowed for every origin", ErrInvalidOrigin))
	}

	for _, method := range c.CORS.AllowedMethods {
		if !isKnownMethod(method) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidMethod, method))
		}
	}

	for _, header := range c.CORS.AllowedHeaders {
		if !httpguts.ValidHeaderFieldName(header) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidHeader, header))
		}
	}

	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth jwt_secret must be set"))
	}

	return errors.Join(errs...)
}

func validateHost(host string) error {
	switch {
	case host == "":
		return fmt.Errorf("%w: empty value", ErrInvalidHost)
	case host == "*":
		return nil
	case strings.Contains(host, "://"), strings.ContainsAny(host, " /"):
		return fmt.Errorf("%w: %q", ErrInvalidHost, host)
	}
	return nil
}

func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidOrigin, origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q must use http or https", ErrInvalidOrigin, origin)
	}
	if u.Host == "" || (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("%w: %q must be scheme://host[:port]", ErrInvalidOrigin, origin)
	}
	return nil
}

func isKnownMethod(method string) bool {
	for _, known := range KnownMethods {
		if method == known {
			return true
		}
	}
	return false
}
