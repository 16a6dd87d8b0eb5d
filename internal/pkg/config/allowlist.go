package config

import (
	"slices"
	"strings"
)

// SecurityConfig holds request filtering configuration
type SecurityConfig struct {
	// AllowedHosts lists the Host header values this service answers to.
	// A leading dot matches the domain and all of its subdomains, "*" matches anything.
	AllowedHosts []string `yaml:"allowed_hosts" env:"ALLOWED_HOSTS" envSeparator:","`
}

// CORSConfig represents cross-origin resource sharing configuration.
// OriginWhitelist is the legacy name for AllowedOrigins and is merged into it on load.
type CORSConfig struct {
	Enabled          bool     `yaml:"enabled" env:"ENABLED"`
	AllowedOrigins   []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" envSeparator:","`
	OriginWhitelist  []string `yaml:"origin_whitelist" env:"ORIGIN_WHITELIST" envSeparator:","`
	AllowAllOrigins  bool     `yaml:"allow_all_origins" env:"ALLOW_ALL_ORIGINS"`
	AllowCredentials bool     `yaml:"allow_credentials" env:"ALLOW_CREDENTIALS"`
	AllowedMethods   []string `yaml:"allowed_methods" env:"ALLOWED_METHODS" envSeparator:","`
	AllowedHeaders   []string `yaml:"allowed_headers" env:"ALLOWED_HEADERS" envSeparator:","`

	// MaxAge is how long, in seconds, browsers may cache a preflight response
	MaxAge int `yaml:"max_age" env:"MAX_AGE"`
}

// AllowList is a read-only snapshot of every allow-list consulted by the
// request filtering middleware
type AllowList struct {
	Hosts            []string
	Origins          []string
	Methods          []string
	Headers          []string
	AllowCredentials bool
	AllowAllOrigins  bool
}

// AllowList returns a copy of the configured allow-lists so callers cannot
// mutate the configuration they were built from
func (c *Config) AllowList() AllowList {
	return AllowList{
		Hosts:            slices.Clone(c.Security.AllowedHosts),
		Origins:          c.CORS.Origins(),
		Methods:          slices.Clone(c.CORS.AllowedMethods),
		Headers:          slices.Clone(c.CORS.AllowedHeaders),
		AllowCredentials: c.CORS.AllowCredentials,
		AllowAllOrigins:  c.CORS.AllowAllOrigins,
	}
}

// Origins returns AllowedOrigins followed by any OriginWhitelist entries not
// already present
func (c CORSConfig) Origins() []string {
	origins := make([]string, 0, len(c.AllowedOrigins)+len(c.OriginWhitelist))
	for _, list := range [][]string{c.AllowedOrigins, c.OriginWhitelist} {
		for _, origin := range list {
			origin = strings.TrimSuffix(strings.TrimSpace(origin), "/")
			if origin == "" || slices.Contains(origins, origin) {
				continue
			}
			origins = append(origins, origin)
		}
	}
	return origins
}

// normalize trims list entries and canonicalises method and header case
func (c *Config) normalize() {
	c.Security.AllowedHosts = trimAll(c.Security.AllowedHosts, strings.ToLower)
	c.CORS.AllowedOrigins = c.CORS.Origins()
	c.CORS.OriginWhitelist = nil
	c.CORS.AllowedMethods = trimAll(c.CORS.AllowedMethods, strings.ToUpper)
	c.CORS.AllowedHeaders = trimAll(c.CORS.AllowedHeaders, strings.ToLower)
}

func trimAll(values []string, transform func(string) string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = transform(strings.TrimSpace(v))
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}
