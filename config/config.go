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
	OFF      OFFConfig
	Curation CurationConfig
	Cache    CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OFFConfig holds Open Food Facts API configuration
type OFFConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Country   string        `mapstructure:"country"`
	PageSize  int           `mapstructure:"page_size"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// CurationConfig holds result-curation configuration
type CurationConfig struct {
	CountryTag   string `mapstructure:"country_tag"`
	ResultCap    int    `mapstructure:"result_cap"`
	TieBreak     string `mapstructure:"tie_break"` // "stable" or "quality"
	DebugLogging bool   `mapstructure:"debug_logging"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/ecoshelf/")

	// Environment variable settings
	v.SetEnvPrefix("ECOSHELF")
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
	v.SetDefault("server.allowed_origins", []string{"http://localhost:8081"})

	// Open Food Facts defaults
	v.SetDefault("off.base_url", "https://world.openfoodfacts.org")
	v.SetDefault("off.user_agent", "EcoShelf/1.0")
	v.SetDefault("off.country", "singapore")
	v.SetDefault("off.page_size", 50)
	v.SetDefault("off.timeout", "30s")

	// Curation defaults
	v.SetDefault("curation.country_tag", "en:singapore")
	v.SetDefault("curation.result_cap", 15)
	v.SetDefault("curation.tie_break", "stable")
	v.SetDefault("curation.debug_logging", false)

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.OFF.BaseURL == "" {
		return fmt.Errorf("Open Food Facts base URL is required (set ECOSHELF_OFF_BASE_URL)")
	}

	if config.OFF.PageSize <= 0 {
		return fmt.Errorf("Open Food Facts page size must be positive, got: %d", config.OFF.PageSize)
	}

	if config.Curation.ResultCap <= 0 {
		return fmt.Errorf("result cap must be positive, got: %d", config.Curation.ResultCap)
	}

	if config.Curation.TieBreak != "stable" && config.Curation.TieBreak != "quality" {
		return fmt.Errorf("tie break must be 'stable' or 'quality', got: %s", config.Curation.TieBreak)
	}

	return nil
}
