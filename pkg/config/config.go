package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Rate provider settings
	RateProviderBaseURL string
	RateProviderTimeout time.Duration

	// API settings
	RateLimitPerMinute int64
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_PROVIDER_BASE_URL", "https://api.exchangerate-api.com/v4/historical")
	viper.SetDefault("RATE_PROVIDER_TIMEOUT", "30s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.RateProviderBaseURL = viper.GetString("RATE_PROVIDER_BASE_URL")

	timeoutStr := viper.GetString("RATE_PROVIDER_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 30 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for RATE_PROVIDER_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.RateProviderTimeout = timeout

	cfg.RateLimitPerMinute = viper.GetInt64("RATE_LIMIT_PER_MINUTE")
	if cfg.RateLimitPerMinute <= 0 {
		cfg.RateLimitPerMinute = 120
		log.Printf("Warning: Invalid value for RATE_LIMIT_PER_MINUTE. Defaulting to %d.\n", cfg.RateLimitPerMinute)
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
