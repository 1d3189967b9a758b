package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface shared by the
// console client and the development catalog server.
type Config struct {
	Server  ServerConfig
	API     APIConfig
	Console ConsoleConfig
	MongoDB MongoDBConfig
}

// ServerConfig holds HTTP server related options for the catalog service.
type ServerConfig struct {
	Port string
}

// APIConfig describes how the console reaches the remote catalog service.
type APIConfig struct {
	BaseURL string
	// RequestTimeout bounds outbound calls when positive; zero keeps the
	// transport default (no deadline).
	RequestTimeout time.Duration
}

// ConsoleConfig holds interactive client behavior knobs.
type ConsoleConfig struct {
	NotificationTTL time.Duration
	// RefreshInterval enables the periodic list refresh job when positive.
	RefreshInterval time.Duration
}

// MongoDBConfig holds settings for the optional MongoDB-backed store. An
// empty URI selects the in-memory store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			// The development server stands in for the catalog service the
			// console reaches by default, so the ports pair up.
			Port: getenvWithDefault("APP_PORT", "8000"),
		},
		API: APIConfig{
			BaseURL:        getenvWithDefault("CATALOG_API_URL", "http://localhost:8000"),
			RequestTimeout: durationWithDefault("CATALOG_REQUEST_TIMEOUT", 0),
		},
		Console: ConsoleConfig{
			NotificationTTL: durationWithDefault("NOTIFICATION_TTL", 5*time.Second),
			RefreshInterval: durationWithDefault("REFRESH_INTERVAL", 0),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "catalog"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.API.BaseURL == "" {
		return errors.New("CATALOG_API_URL must be provided")
	}

	if c.API.RequestTimeout < 0 {
		return errors.New("CATALOG_REQUEST_TIMEOUT must not be negative")
	}

	if c.Console.NotificationTTL <= 0 {
		return errors.New("NOTIFICATION_TTL must be positive")
	}

	if c.Console.RefreshInterval < 0 {
		return errors.New("REFRESH_INTERVAL must not be negative")
	}

	if c.MongoDB.URI != "" && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided when MONGODB_URI is set")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// durationWithDefault parses a Go duration string from the environment,
// falling back when the variable is unset or malformed.
func durationWithDefault(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
