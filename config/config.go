package config

import (
	"fmt"
	"os"
	"strconv"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration. DBDriver selects sqlite or postgres; the
	// DBHost/DBPort/DBUser group only applies to postgres, DBPath only to
	// sqlite.
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration. An empty RedisAddr disables the plan cache; the
	// service then computes plans on every request.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// JWT configuration
	JWTSecret string

	// Logging
	LogLevel string
}

// LoadConfig creates a new Config instance from environment variables, with
// environment-specific defaults applied before validation.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{
		ServerHost:    os.Getenv("SERVER_HOST"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		DBDriver:      os.Getenv("DB_DRIVER"),
		DBPath:        os.Getenv("DB_PATH"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSSLMode:     os.Getenv("DB_SSL_MODE"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", raw, err)
		}
		cfg.RedisDB = db
	}

	applyDefaults(cfg, env)

	if err := ValidateConfig(cfg, env); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills unset fields. Development and test get a fully working
// local setup out of the box; production defaults only the unambiguous fields
// and lets validation demand the rest.
func applyDefaults(cfg *Config, env Environment) {
	if cfg.ServerHost == "" {
		cfg.ServerHost = "0.0.0.0"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.DBDriver == "" {
		if env == Production {
			cfg.DBDriver = DriverPostgres
		} else {
			cfg.DBDriver = DriverSQLite
		}
	}

	if cfg.DBDriver == DriverSQLite && cfg.DBPath == "" {
		cfg.DBPath = "ricebowl.db"
	}
	if cfg.DBDriver == DriverPostgres {
		if cfg.DBHost == "" {
			cfg.DBHost = "localhost"
		}
		if cfg.DBPort == "" {
			cfg.DBPort = "5432"
		}
		if cfg.DBName == "" {
			cfg.DBName = "ricebowl"
		}
		if cfg.DBSSLMode == "" {
			cfg.DBSSLMode = "disable"
		}
	}

	if cfg.JWTSecret == "" && env != Production {
		cfg.JWTSecret = "dev-only-secret"
	}
}

// PostgresDSN builds the connection string for the postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// CacheEnabled reports whether a Redis plan cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}
