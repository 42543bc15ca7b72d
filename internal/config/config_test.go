package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SIKAAI_API_URL", "SIKAAI_TIMEOUT_MS", "SIKAAI_RETRY_ATTEMPTS",
		"SIKAAI_RETRY_DELAY_MS", "SIKAAI_OFFLINE_CACHE", "SIKAAI_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIBaseURL != "http://localhost:5000/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v; want 30s", cfg.RequestTimeout)
	}
	if cfg.RetryAttempts != 3 {
		t.Errorf("RetryAttempts = %d; want 3", cfg.RetryAttempts)
	}
	if cfg.RetryBaseDelay != time.Second {
		t.Errorf("RetryBaseDelay = %v; want 1s", cfg.RetryBaseDelay)
	}
	if !cfg.OfflineCache {
		t.Error("OfflineCache = false; want true by default")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q; want info", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SIKAAI_API_URL", "https://api.example.com/v1")
	t.Setenv("SIKAAI_TIMEOUT_MS", "5000")
	t.Setenv("SIKAAI_RETRY_ATTEMPTS", "5")
	t.Setenv("SIKAAI_OFFLINE_CACHE", "false")
	t.Setenv("SIKAAI_DATA_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIBaseURL != "https://api.example.com/v1" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v; want 5s", cfg.RequestTimeout)
	}
	if cfg.RetryAttempts != 5 {
		t.Errorf("RetryAttempts = %d; want 5", cfg.RetryAttempts)
	}
	if cfg.OfflineCache {
		t.Error("OfflineCache = true; want false")
	}
}

func TestLoad_RejectsZeroRetryAttempts(t *testing.T) {
	t.Setenv("SIKAAI_RETRY_ATTEMPTS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted SIKAAI_RETRY_ATTEMPTS=0")
	}
}

func TestLoad_IgnoresMalformedInt(t *testing.T) {
	t.Setenv("SIKAAI_TIMEOUT_MS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v; want the 30s default", cfg.RequestTimeout)
	}
}
