package config

import (
	"fmt"
	"os"
	"time"

	"github.com/everydayventures/website/internal/api/sanitization"
	"github.com/everydayventures/website/internal/logging"
	"github.com/everydayventures/website/internal/models"
	"github.com/everydayventures/website/internal/utils"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment  string `env:"ENV" envDefault:"development"`
	Port         string `env:"PORT" envDefault:"8080"`
	MaxBodyBytes int64  `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	// Logging Configuration
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Contact Form Configuration
	RecipientEmail string `env:"CONTACT_RECIPIENT_EMAIL"`
	RecipientName  string `env:"CONTACT_RECIPIENT_NAME"`
	FromEmail      string `env:"CONTACT_FROM_EMAIL"`
	FromName       string `env:"CONTACT_FROM_NAME"`
	Domain         string `env:"CONTACT_DOMAIN"`
	BCCEmail       string `env:"CONTACT_BCC_EMAIL"`

	// MailChannels Configuration
	MailChannelsURL    string        `env:"MAILCHANNELS_URL" envDefault:"https://api.mailchannels.net/tx/v1/send"`
	MailChannelsAPIKey string        `env:"MAILCHANNELS_API_KEY"`
	MailTimeout        time.Duration `env:"MAIL_TIMEOUT" envDefault:"10s"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envLocations := []string{".env"}

	// If ENV is set, try to load that specific file first
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		// godotenv never overrides variables already present in the environment
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	return Parse()
}

// Parse builds the configuration from the current environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.RecipientEmail = sanitization.SanitizeField(cfg.RecipientEmail)
	cfg.RecipientName = sanitization.SanitizeField(cfg.RecipientName)
	cfg.FromEmail = sanitization.SanitizeField(cfg.FromEmail)
	cfg.FromName = sanitization.SanitizeField(cfg.FromName)
	cfg.Domain = sanitization.SanitizeField(cfg.Domain)
	cfg.BCCEmail = sanitization.SanitizeField(cfg.BCCEmail)

	if cfg.Domain != "" && !utils.IsValidDomain(cfg.Domain) {
		return nil, fmt.Errorf("invalid CONTACT_DOMAIN %q", cfg.Domain)
	}

	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be positive")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Logging returns the logger configuration derived from this config
func (c *Config) Logging() *logging.Config {
	logCfg := logging.DefaultConfig()
	logCfg.Level = c.LogLevel
	logCfg.File = c.LogFile
	logCfg.Requests = c.LogRequests
	return logCfg
}

// Mail returns the outbound email settings derived from this config
func (c *Config) Mail() models.MailSettings {
	return models.MailSettings{
		RecipientEmail: c.RecipientEmail,
		RecipientName:  c.RecipientName,
		FromEmail:      c.FromEmail,
		FromName:       c.FromName,
		Domain:         c.Domain,
		BCCEmail:       c.BCCEmail,
	}
}
