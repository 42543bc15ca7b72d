package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the client.
type Config struct {
	// API
	APIBaseURL     string
	RequestTimeout time.Duration

	// Retry (idempotent GETs only)
	RetryAttempts  int
	RetryBaseDelay time.Duration

	// Local state
	DataDir      string
	OfflineCache bool

	// Diagnostics
	Debug    bool
	LogLevel string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() (*Config, error) {
	// Best effort: absence of a .env file is the common case.
	_ = godotenv.Load()

	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		APIBaseURL:     getEnv("SIKAAI_API_URL", "http://localhost:5000/api"),
		RequestTimeout: time.Duration(getEnvInt("SIKAAI_TIMEOUT_MS", 30000)) * time.Millisecond,
		RetryAttempts:  getEnvInt("SIKAAI_RETRY_ATTEMPTS", 3),
		RetryBaseDelay: time.Duration(getEnvInt("SIKAAI_RETRY_DELAY_MS", 1000)) * time.Millisecond,
		DataDir:        getEnv("SIKAAI_DATA_DIR", dataDir),
		OfflineCache:   getEnvBool("SIKAAI_OFFLINE_CACHE", true),
		Debug:          getEnvBool("SIKAAI_DEBUG", false),
		LogLevel:       getEnv("SIKAAI_LOG_LEVEL", "info"),
	}

	if cfg.RetryAttempts < 1 {
		return nil, fmt.Errorf("SIKAAI_RETRY_ATTEMPTS must be at least 1")
	}

	return cfg, nil
}

// EnsureDataDir creates the ~/.sikaai directory if needed and returns its path.
func EnsureDataDir() (string, error) {
	dir, err := defaultDataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return dir, nil
}

func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".sikaai"), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
