// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	SecretKey   string
	DatabaseURI string
	AdminUser   string
	AdminPass   string
	Port        int
	DebugMode   bool
}

// UsesMongo reports whether DatabaseURI points at a MongoDB deployment.
// Any other value is treated as a SQLite file path.
func (c *Config) UsesMongo() bool {
	return strings.HasPrefix(c.DatabaseURI, "mongodb://") ||
		strings.HasPrefix(c.DatabaseURI, "mongodb+srv://")
}

// ListenAddr returns the address the HTTP server should bind to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads configuration from environment variables and returns a validated Config.
// SECRET_KEY and ADMIN_DEFAULT_PASS are required; startup fails without them.
// Optional variables with defaults: DATABASE_URI (weddingsite.db),
// ADMIN_DEFAULT_USER (admin), PORT (5000), DEBUG_MODE (off).
func Load() (*Config, error) {
	secretKey := os.Getenv("SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}

	adminPass := os.Getenv("ADMIN_DEFAULT_PASS")
	if adminPass == "" {
		return nil, fmt.Errorf("ADMIN_DEFAULT_PASS is required")
	}

	databaseURI := "weddingsite.db"
	if v, ok := os.LookupEnv("DATABASE_URI"); ok && v != "" {
		databaseURI = v
	}

	adminUser := "admin"
	if v, ok := os.LookupEnv("ADMIN_DEFAULT_USER"); ok && v != "" {
		adminUser = v
	}

	port := 5000
	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 65535 {
			return nil, fmt.Errorf("PORT has invalid value %q", v)
		}
		port = parsed
	}

	debugMode := false
	if v, ok := os.LookupEnv("DEBUG_MODE"); ok && v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("DEBUG_MODE has invalid value %q: %w", v, err)
		}
		debugMode = parsed
	}

	return &Config{
		SecretKey:   secretKey,
		DatabaseURI: databaseURI,
		AdminUser:   adminUser,
		AdminPass:   adminPass,
		Port:        port,
		DebugMode:   debugMode,
	}, nil
}
