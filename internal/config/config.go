// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreJSON   = "json"
	StoreMemory = "memory"
	StoreMySQL  = "mysql"
)

// Config holds all configuration for the application
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	Store     StoreConfig
	Upload    UploadConfig
	RateLimit RateLimitConfig
}

// DatabaseConfig holds database connection settings, used by the mysql store driver
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
	// StaticDir is an optional front-end directory served for paths not claimed by the API
	StaticDir string
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// StoreConfig selects where lessons and media records are kept
type StoreConfig struct {
	Driver  string
	DataDir string
}

// UploadConfig holds media upload settings
type UploadConfig struct {
	Dir          string
	MaxSizeBytes int64
}

// RateLimitConfig holds per-IP API rate limiting settings
type RateLimitConfig struct {
	RequestsPerMinute int
}

// LessonsFile returns the path of the lessons JSON collection
func (c StoreConfig) LessonsFile() string {
	return filepath.Join(c.DataDir, "lessons.json")
}

// MediaFile returns the path of the media JSON collection
func (c StoreConfig) MediaFile() string {
	return filepath.Join(c.DataDir, "media.json")
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	var err error

	// Server configuration
	if cfg.Server.Port, err = intEnv("SERVER_PORT", 3000); err != nil {
		return nil, err
	}
	cfg.Server.StaticDir = os.Getenv("STATIC_DIR")

	// Logging configuration
	cfg.Logging.Level = stringEnv("LOG_LEVEL", "info")

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// Store configuration
	cfg.Store.Driver = strings.ToLower(stringEnv("STORE_DRIVER", StoreJSON))
	cfg.Store.DataDir = stringEnv("DATA_DIR", "./data")
	switch cfg.Store.Driver {
	case StoreJSON, StoreMemory:
	case StoreMySQL:
		if err := loadDatabase(&cfg.Database); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: must be json, memory or mysql", cfg.Store.Driver)
	}

	// Upload configuration
	cfg.Upload.Dir = stringEnv("UPLOAD_DIR", "./uploads")
	maxSizeMB, err := intEnv("MAX_UPLOAD_SIZE_MB", 100)
	if err != nil {
		return nil, err
	}
	if maxSizeMB <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_SIZE_MB must be positive")
	}
	cfg.Upload.MaxSizeBytes = int64(maxSizeMB) * 1024 * 1024

	// Rate limit configuration
	if cfg.RateLimit.RequestsPerMinute, err = intEnv("RATE_LIMIT_PER_MINUTE", 300); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDatabase reads the MySQL connection settings, all of which are required
func loadDatabase(db *DatabaseConfig) error {
	db.Host = os.Getenv("DB_HOST")
	if db.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	db.Port = dbPort

	db.User = os.Getenv("DB_USER")
	if db.User == "" {
		return fmt.Errorf("DB_USER is required")
	}

	db.Password = os.Getenv("DB_PASSWORD")
	if db.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}

	db.DBName = os.Getenv("DB_NAME")
	if db.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}

	return nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// parseOrigins splits a comma-separated origin list, allowing all origins when none are given
func parseOrigins(value string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(value, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
