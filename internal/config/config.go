package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings, all read from the environment.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	Addr        string
	TokenTTL    time.Duration
}

// Load reads the configuration from the environment. JWT_SECRET and
// DATABASE_URL have no defaults and must be set before startup.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("addr", ":8000")
	v.SetDefault("token_ttl", 24*time.Hour)

	cfg := &Config{
		DatabaseURL: v.GetString("database_url"),
		JWTSecret:   v.GetString("jwt_secret"),
		Addr:        v.GetString("addr"),
		TokenTTL:    v.GetDuration("token_ttl"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("environment variable JWT_SECRET not found")
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("environment variable DATABASE_URL not found")
	}
	if cfg.TokenTTL <= 0 {
		return nil, errors.New("TOKEN_TTL must be a positive duration")
	}
	return cfg, nil
}
