package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://localhost/foodcheck")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected config to load, got %v", err)
	}

	if cfg.Addr != ":8000" {
		t.Errorf("expected default addr ':8000', got %q", cfg.Addr)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected default token TTL 24h, got %v", cfg.TokenTTL)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("expected secret from environment, got %q", cfg.JWTSecret)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/foodcheck")

	if _, err := Load(); err == nil {
		t.Error("expected an error when JWT_SECRET is unset")
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Error("expected an error when DATABASE_URL is unset")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://localhost/foodcheck")
	t.Setenv("ADDR", ":9999")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected config to load, got %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("expected addr ':9999', got %q", cfg.Addr)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("expected token TTL 30m, got %v", cfg.TokenTTL)
	}
}
