package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Auth modes supported by the identity middleware.
const (
	AuthModeAuthorizer = "authorizer"
	AuthModeToken      = "token"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType            string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Identity resolution
	AuthMode      string // authorizer or token
	AuthzURL      string
	AuthzClientID string
	JWTSecret     string

	// Role bootstrap: identities seeded as admin at startup
	AdminIdentities []string

	// Credit policy
	DefaultCreditAllowance uint64

	// Catalog bootstrap on startup
	CatalogAutoInit bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                   getEnv("PORT", "3000"),
		DBType:                 getEnv("DB_TYPE", "mysql"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "3306"),
		DBDatabase:             getEnv("DB_DATABASE", ""),
		DBUser:                 getEnv("DB_USER", ""),
		DBPassword:             getEnv("DB_PASSWORD", ""),
		DBConnectionLimit:      getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		AuthMode:               getEnv("AUTH_MODE", AuthModeAuthorizer),
		AuthzURL:               getEnv("AUTHZ_URL", ""),
		AuthzClientID:          getEnv("AUTHZ_CLIENT_ID", ""),
		JWTSecret:              getEnv("AUTH_JWT_SECRET", ""),
		AdminIdentities:        getEnvAsList("ADMIN_IDENTITIES"),
		DefaultCreditAllowance: getEnvAsUint64("DEFAULT_CREDIT_ALLOWANCE", 100),
		CatalogAutoInit:        getEnvAsBool("CATALOG_AUTO_INIT", true),
	}

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBType != "sqlite" && cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}

	switch cfg.AuthMode {
	case AuthModeAuthorizer:
		if cfg.AuthzURL == "" {
			return nil, fmt.Errorf("AUTHZ_URL is required in authorizer auth mode")
		}
		if cfg.AuthzClientID == "" {
			return nil, fmt.Errorf("AUTHZ_CLIENT_ID is required in authorizer auth mode")
		}
	case AuthModeToken:
		if cfg.JWTSecret == "" {
			return nil, fmt.Errorf("AUTH_JWT_SECRET is required in token auth mode")
		}
	default:
		return nil, fmt.Errorf("unsupported auth mode: %s", cfg.AuthMode)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsUint64 gets an environment variable as a uint64 or returns a default value
func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList gets a comma-separated environment variable as a string slice
func getEnvAsList(key string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return nil
	}
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			values = append(values, p)
		}
	}
	return values
}
