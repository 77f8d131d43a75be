// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir  string // Base directory for the catalog and cache databases
	Port     int
	LogLevel string
	DevMode  bool

	// External product listing source
	ProductAPIURL     string        // Empty disables live fetches (static catalog only)
	ProductTimeout    time.Duration // Per-request timeout for product fetches
	ProductRetries    int           // Retry count after the initial attempt
	ProductRetryDelay time.Duration // Fixed delay between retries

	// Background jobs
	CatalogRefreshCron string // Cron spec (with seconds) for catalog cache warming

	Backup *BackupConfig
}

// BackupConfig holds settings for catalog snapshot backups to an
// S3-compatible bucket. Backups are disabled when credentials are missing.
type BackupConfig struct {
	Enabled         bool
	Bucket          string
	Endpoint        string // S3-compatible endpoint URL (e.g. Cloudflare R2)
	AccessKeyID     string
	SecretAccessKey string
	Cron            string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("ADVISOR_DATA_DIR", "./data")
	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}
	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:  absDataDir,
		Port:     getEnvAsInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DevMode:  getEnvAsBool("DEV_MODE", false),

		ProductAPIURL:     getEnv("PRODUCT_API_URL", ""),
		ProductTimeout:    getEnvAsDuration("PRODUCT_FETCH_TIMEOUT", 10*time.Second),
		ProductRetries:    getEnvAsInt("PRODUCT_FETCH_RETRIES", 2),
		ProductRetryDelay: getEnvAsDuration("PRODUCT_FETCH_RETRY_DELAY", 2*time.Second),

		// Default: every Monday at 06:00 (spec includes seconds field)
		CatalogRefreshCron: getEnv("CATALOG_REFRESH_CRON", "0 0 6 * * 1"),

		Backup: loadBackupConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.ProductRetries < 0 {
		return fmt.Errorf("invalid product retry count: %d", c.ProductRetries)
	}
	return nil
}

func loadBackupConfig() *BackupConfig {
	cfg := &BackupConfig{
		Enabled:         getEnvAsBool("BACKUP_ENABLED", false),
		Bucket:          getEnv("BACKUP_BUCKET", ""),
		Endpoint:        getEnv("BACKUP_ENDPOINT", ""),
		AccessKeyID:     getEnv("BACKUP_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("BACKUP_SECRET_ACCESS_KEY", ""),
		// Default: daily at 02:00
		Cron: getEnv("BACKUP_CRON", "0 0 2 * * *"),
	}

	// Backups need a bucket and credentials to run at all
	if cfg.Bucket == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		cfg.Enabled = false
	}

	return cfg
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
