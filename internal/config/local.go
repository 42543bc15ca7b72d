package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const userConfigFile = "config.yaml"

// UserConfig holds the per-user settings kept in ~/.sikaai/config.yaml.
// Environment variables take precedence over this file.
type UserConfig struct {
	API      APIConfig `yaml:"api"`
	Language string    `yaml:"language"` // "en" or "ne"
	Offline  bool      `yaml:"offline_cache"`
	LogLevel string    `yaml:"log_level"`
}

// APIConfig holds API endpoint settings.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DefaultUserConfig returns the settings used when no config file exists.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		API: APIConfig{
			BaseURL:        "http://localhost:5000/api",
			TimeoutSeconds: 30,
		},
		Language: "ne",
		Offline:  true,
		LogLevel: "info",
	}
}

// LoadUserConfig reads the user config file from the data directory,
// falling back to defaults when the file does not exist.
func LoadUserConfig(dataDir string) (*UserConfig, error) {
	path := filepath.Join(dataDir, userConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultUserConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultUserConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// SaveUserConfig writes the user config file to the data directory.
func SaveUserConfig(dataDir string, cfg *UserConfig) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	path := filepath.Join(dataDir, userConfigFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Apply overlays user-config values onto cfg where the environment left
// the defaults in place.
func (u *UserConfig) Apply(cfg *Config) {
	if os.Getenv("SIKAAI_API_URL") == "" && u.API.BaseURL != "" {
		cfg.APIBaseURL = u.API.BaseURL
	}
	if os.Getenv("SIKAAI_LOG_LEVEL") == "" && u.LogLevel != "" {
		cfg.LogLevel = u.LogLevel
	}
	if os.Getenv("SIKAAI_OFFLINE_CACHE") == "" {
		cfg.OfflineCache = u.Offline
	}
}
