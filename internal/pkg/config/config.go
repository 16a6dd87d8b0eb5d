package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the main application configuration
type Config struct {
	AppName  string         `yaml:"app_name" env:"APP_NAME"`
	Server   ServerConfig   `yaml:"server" envPrefix:"SERVER_"`
	Security SecurityConfig `yaml:"security" envPrefix:"SECURITY_"`
	CORS     CORSConfig     `yaml:"cors" envPrefix:"CORS_"`
	Docs     DocsConfig     `yaml:"docs" envPrefix:"DOCS_"`
	Auth     AuthConfig     `yaml:"auth" envPrefix:"AUTH_"`
	Logs     LogsConfig     `yaml:"logs" envPrefix:"LOGS_"`
}

// ServerConfig holds server related configuration.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port            int    `yaml:"port" env:"PORT"`
	Host            string `yaml:"host" env:"HOST"`
	ReadTimeout     int    `yaml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout    int    `yaml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout     int    `yaml:"idle_timeout" env:"IDLE_TIMEOUT"`
	ShutdownTimeout int    `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
	MaxHeaderBytes  int    `yaml:"max_header_bytes" env:"MAX_HEADER_BYTES"`
	PIDFile         string `yaml:"pid_file" env:"PID_FILE"`
}

// DocsConfig holds the metadata published by the API documentation views
type DocsConfig struct {
	Title          string `yaml:"title" env:"TITLE"`
	DefaultVersion string `yaml:"default_version" env:"DEFAULT_VERSION"`
	Description    string `yaml:"description" env:"DESCRIPTION"`
	Public         bool   `yaml:"public" env:"PUBLIC"`

	// CacheTimeout of 0 disables caching of the swagger and redoc pages
	CacheTimeout int `yaml:"cache_timeout" env:"CACHE_TIMEOUT"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	User string `yaml:"user" env:"USER"`
	Pass string `yaml:"pass" env:"PASS"`

	// JWTSecret signs access and refresh tokens
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET"`

	// Lifetimes in seconds
	AccessTokenLifetime  int `yaml:"access_token_lifetime" env:"ACCESS_TOKEN_LIFETIME"`
	RefreshTokenLifetime int `yaml:"refresh_token_lifetime" env:"REFRESH_TOKEN_LIFETIME"`
}

// LogsConfig holds logging configuration
type LogsConfig struct {
	Enabled  bool   `yaml:"enabled" env:"ENABLED"`
	Level    string `yaml:"level" env:"LEVEL"`
	FilePath string `yaml:"file_path" env:"FILE_PATH"`
	Format   string `yaml:"format" env:"FORMAT"`
	Stdout   bool   `yaml:"stdout" env:"STDOUT"`

	// RedactSensitive masks credentials in logged request payloads and headers
	RedactSensitive bool `yaml:"redact_sensitive" env:"REDACT_SENSITIVE"`
}

// Addr returns the listen address in host:port form
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Seconds converts a config value expressed in seconds to a time.Duration
func Seconds(v int) time.Duration {
	return time.Duration(v) * time.Second
}

// LoadConfig loads the configuration from the specified file path.
// Values missing from the file keep their defaults and environment
// variables prefixed with MERLIN_ override both.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	cfg.normalize()
	return cfg, nil
}

// SaveConfig saves the configuration to the specified file path
func SaveConfig(cfg *Config, filePath string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		AppName: "MerlinsForkAPI",
		Server: ServerConfig{
			Port:            8000,
			Host:            "0.0.0.0",
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 20,
			MaxHeaderBytes:  1 << 20,
			PIDFile:         "/var/run/merlinsfork_api.pid",
		},
		Security: SecurityConfig{
			AllowedHosts: []string{
				"localhost",
				"127.0.0.1",
				"0.0.0.0",
				"host.docker.internal",
			},
		},
		CORS: CORSConfig{
			Enabled: true,
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://0.0.0.0:3000",
				"http://host.docker.internal:3000",
			},
			AllowAllOrigins:  false,
			AllowCredentials: true,
			AllowedMethods:   []string{"DELETE", "GET", "OPTIONS", "PATCH", "POST", "PUT"},
			AllowedHeaders: []string{
				"accept",
				"accept-encoding",
				"authorization",
				"content-type",
				"dnt",
				"origin",
				"user-agent",
				"x-csrftoken",
				"x-requested-with",
			},
			MaxAge: 86400,
		},
		Docs: DocsConfig{
			Title:          "API Documentation",
			DefaultVersion: "v1",
			Description:    "API documentation",
			Public:         true,
			CacheTimeout:   0,
		},
		Auth: AuthConfig{
			User:                 "admin",
			Pass:                 "admin",
			JWTSecret:            "insecure-development-secret",
			AccessTokenLifetime:  3600,
			RefreshTokenLifetime: 86400,
		},
		Logs: LogsConfig{
			Enabled:         true,
			Level:           "info",
			FilePath:        "logs",
			Format:          "json",
			Stdout:          true,
			RedactSensitive: true,
		},
	}
}
