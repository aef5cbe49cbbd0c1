package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Source   SourceConfig
	Cache    CacheConfig
	Matching MatchingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SourceConfig holds retailer price-transparency source configuration
type SourceConfig struct {
	ListingURL             string        `mapstructure:"listing_url"`
	Timeout                time.Duration `mapstructure:"timeout"`
	RefreshTimeout         time.Duration `mapstructure:"refresh_timeout"`
	MaxConcurrentDownloads int           `mapstructure:"max_concurrent_downloads"`
	RequestsPerSecond      float64       `mapstructure:"requests_per_second"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// MatchingConfig holds matching configuration
type MatchingConfig struct {
	FuzzyMatchLimit    int  `mapstructure:"fuzzy_match_limit"`
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pricepulse/")

	// Environment variable settings
	v.SetEnvPrefix("PRICEPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})

	// Source defaults
	v.SetDefault("source.listing_url", "https://prices.shufersal.co.il/")
	v.SetDefault("source.timeout", "30s")
	v.SetDefault("source.refresh_timeout", "5m")
	v.SetDefault("source.max_concurrent_downloads", 4)
	v.SetDefault("source.requests_per_second", 2.0)

	// Cache defaults
	v.SetDefault("cache.ttl", "1h")

	// Matching defaults
	v.SetDefault("matching.fuzzy_match_limit", 5)
	v.SetDefault("matching.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Source.ListingURL == "" {
		return fmt.Errorf("source listing URL is required (set PRICEPULSE_SOURCE_LISTING_URL)")
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %s", config.Cache.TTL)
	}

	if config.Source.MaxConcurrentDownloads <= 0 {
		return fmt.Errorf("max concurrent downloads must be positive, got: %d", config.Source.MaxConcurrentDownloads)
	}

	return nil
}
