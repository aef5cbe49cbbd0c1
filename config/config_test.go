package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("PRICEPULSE_SERVER_PORT")
		os.Unsetenv("PRICEPULSE_SERVER_ENVIRONMENT")
		os.Unsetenv("PRICEPULSE_SOURCE_LISTING_URL")
		os.Unsetenv("PRICEPULSE_SOURCE_TIMEOUT")
		os.Unsetenv("PRICEPULSE_SOURCE_MAX_CONCURRENT_DOWNLOADS")
		os.Unsetenv("PRICEPULSE_CACHE_TTL")
		os.Unsetenv("PRICEPULSE_MATCHING_FUZZY_MATCH_LIMIT")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Source.ListingURL == "" {
			t.Error("Source.ListingURL default is empty")
		}
		if cfg.Source.Timeout != 30*time.Second {
			t.Errorf("Source.Timeout = %v, want 30s", cfg.Source.Timeout)
		}
		if cfg.Source.MaxConcurrentDownloads != 4 {
			t.Errorf("Source.MaxConcurrentDownloads = %d, want 4", cfg.Source.MaxConcurrentDownloads)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.Matching.FuzzyMatchLimit != 5 {
			t.Errorf("Matching.FuzzyMatchLimit = %d, want 5", cfg.Matching.FuzzyMatchLimit)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICEPULSE_SERVER_PORT", "9999")
		os.Setenv("PRICEPULSE_SOURCE_LISTING_URL", "https://prices.example.com/files")
		os.Setenv("PRICEPULSE_CACHE_TTL", "30m")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9999" {
			t.Errorf("Server.Port = %s, want 9999", cfg.Server.Port)
		}
		if cfg.Source.ListingURL != "https://prices.example.com/files" {
			t.Errorf("Source.ListingURL = %s", cfg.Source.ListingURL)
		}
		if cfg.Cache.TTL != 30*time.Minute {
			t.Errorf("Cache.TTL = %v, want 30m", cfg.Cache.TTL)
		}
	})

	t.Run("rejects non-positive cache TTL", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICEPULSE_CACHE_TTL", "0s")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() accepted a zero cache TTL")
		}
	})

	t.Run("rejects non-positive download concurrency", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICEPULSE_SOURCE_MAX_CONCURRENT_DOWNLOADS", "0")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() accepted zero max concurrent downloads")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Source: SourceConfig{
				ListingURL:             "https://prices.example.com/",
				MaxConcurrentDownloads: 4,
			},
			Cache: CacheConfig{TTL: time.Hour},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v", err)
		}
	})

	t.Run("missing listing URL fails", func(t *testing.T) {
		cfg := valid()
		cfg.Source.ListingURL = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() accepted empty listing URL")
		}
	})
}
