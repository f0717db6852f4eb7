// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Addr            string
	CORSOrigin      string
	ShutdownTimeout time.Duration
}

// DatabaseConfig selects the SQL driver and its connection string.
// For sqlite the DSN is a file path.
type DatabaseConfig struct {
	Driver string
	DSN    string
}

// AuthConfig holds the token settings
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// DefaultJWTSecret is only acceptable for local development.
const DefaultJWTSecret = "dev-secret-change-me"

// Load reads the configuration from environment variables.
// Malformed durations are reported rather than silently replaced.
func Load() (*Config, error) {
	var errs []error

	cfg := &Config{
		Server: ServerConfig{
			Addr:            getEnv("ADDR", ":8080"),
			CORSOrigin:      getEnv("CORS_ORIGIN", "*"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second, &errs),
		},
		Database: DatabaseConfig{
			Driver: strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			DSN:    getEnv("DB_DSN", "./data/splitkaro.db"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", DefaultJWTSecret),
			TokenTTL:  getEnvAsDuration("TOKEN_TTL", 24*time.Hour, &errs),
		},
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("ADDR must not be empty"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER %q is not supported (use %s or %s)", c.Database.Driver, DriverSQLite, DriverPostgres))
	}
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("DB_DSN must not be empty"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	return errors.Join(errs...)
}

// Helper functions to read environment variables
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return value
}
