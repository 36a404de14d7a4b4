package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	API       APIConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port          string
	Env           string
	LogLevel      string
	AllowedOrigin string
}

// APIConfig points at the remote HealthHub service. The origin is fixed per deployment.
type APIConfig struct {
	BaseURL string
}

// SessionConfig covers the BFF session cookie and the workspaces behind it.
// AnonymousExpiry applies to workspaces that never logged in.
type SessionConfig struct {
	Secret          string
	Expiry          time.Duration
	AnonymousExpiry time.Duration
	MaxWorkspaces   int
	CookieName      string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

var ErrMissingSessionSecret = errors.New("SESSION_SECRET is required in production")

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	v.SetDefault("API_BASE_URL", "https://healthcare-api-production-1930.up.railway.app/api")
	v.SetDefault("SESSION_COOKIE_NAME", "hh_session")
	v.SetDefault("SESSION_MAX_WORKSPACES", 10000)
	v.SetDefault("AUTH_RATE_LIMIT_RPS", 1.0)
	v.SetDefault("AUTH_RATE_LIMIT_BURST", 5)

	if err := v.ReadInConfig(); err != nil {
		// .env is optional, the environment alone is enough
		var notFound viper.ConfigFileNotFoundError
		var pathErr *fs.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	expiry, err := time.ParseDuration(v.GetString("SESSION_EXPIRY"))
	if err != nil {
		expiry = 24 * time.Hour
	}
	anonymousExpiry, err := time.ParseDuration(v.GetString("SESSION_ANONYMOUS_EXPIRY"))
	if err != nil {
		anonymousExpiry = 15 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:          v.GetString("APP_PORT"),
			Env:           v.GetString("APP_ENV"),
			LogLevel:      v.GetString("LOG_LEVEL"),
			AllowedOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		},
		API: APIConfig{
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Session: SessionConfig{
			Secret:          v.GetString("SESSION_SECRET"),
			Expiry:          expiry,
			AnonymousExpiry: anonymousExpiry,
			MaxWorkspaces:   v.GetInt("SESSION_MAX_WORKSPACES"),
			CookieName:      v.GetString("SESSION_COOKIE_NAME"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("AUTH_RATE_LIMIT_RPS"),
			Burst: v.GetInt("AUTH_RATE_LIMIT_BURST"),
		},
	}

	if config.Session.Secret == "" {
		if config.IsProduction() {
			return nil, ErrMissingSessionSecret
		}
		config.Session.Secret = "healthhub-development-secret"
	}

	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
