package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development" validate:"oneof=development production test"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogFile     string `env:"LOG_FILE"`

	// Database Configuration
	DatabaseURL string `env:"DATABASE_URL"`

	// Rate Limit Backing Store
	// When set, the contact endpoint's fixed-window counters live in Redis so
	// multiple instances share one budget. Empty means in-process memory.
	RedisAddr string `env:"REDIS_ADDR"`

	// Email Notification Configuration
	ResendAPIKey string `env:"RESEND_API_KEY"`
	EmailFrom    string `env:"EMAIL_FROM" envDefault:"The AI Struggle Bus <hello@theaistrugglebus.com>" validate:"required"`
	EmailTo      string `env:"CONTACT_NOTIFY_EMAIL" envDefault:"hello@theaistrugglebus.com" validate:"required"`

	// CORS Configuration
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if present. godotenv never overwrites variables that are
	// already set, so real environment wins over file contents.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}
	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Default log file location follows the deployment layout
	if cfg.LogFile == "" && cfg.Environment == "production" {
		cfg.LogFile = "/app/logs/api.log"
	}

	return cfg, nil
}
