// Package config loads the service configuration from the environment.
//
// Values come from process environment variables (a local .env file is
// autoloaded by the entrypoints). The optional pricing catalog override file is
// read separately by [LoadCatalog].
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

var ErrMissingJWTSecret = errors.New("AUTH_JWT_SECRET is required in production")

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort int    `env:"HTTP_PORT" envDefault:"8080"`

	Redis    RedisConfig
	DynamoDB DynamoDBConfig
	Auth     AuthConfig
	Telegram TelegramConfig
	Quote    QuoteConfig
}

type RedisConfig struct {
	Addr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password   string        `env:"REDIS_PASSWORD"`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// DynamoDBConfig keeps the local-friendly defaults: DynamoDB Local does not
// validate credentials but the AWS SDK requires them.
type DynamoDBConfig struct {
	Region             string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID        string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey    string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint           string `env:"DYNAMODB_ENDPOINT"`
	ProjectsTable      string `env:"PROJECTS_TABLE" envDefault:"projects"`
	ClientsTable       string `env:"CLIENTS_TABLE" envDefault:"clients"`
	QuoteRequestsTable string `env:"QUOTE_REQUESTS_TABLE" envDefault:"quote_requests"`
}

type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET"`
	Issuer    string `env:"AUTH_JWT_ISSUER"`
}

type TelegramConfig struct {
	Token  string `env:"TELEGRAM_TOKEN"`
	ChatID int64  `env:"TELEGRAM_CHAT_ID"`
}

type QuoteConfig struct {
	Currency     string `env:"QUOTE_CURRENCY" envDefault:"AED"`
	ValidityDays int    `env:"QUOTE_VALIDITY_DAYS" envDefault:"30"`
	CatalogPath  string `env:"CATALOG_PATH"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.IsProduction() && strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.Quote.ValidityDays <= 0 {
		return nil, fmt.Errorf("invalid QUOTE_VALIDITY_DAYS: %d", cfg.Quote.ValidityDays)
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// TelegramEnabled reports whether operator notifications can be delivered.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.Token != "" && c.Telegram.ChatID != 0
}
