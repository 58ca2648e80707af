package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("expected 15s http timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.SettingsDBPath != "nitro-admin.db" {
		t.Errorf("expected default db path, got %q", cfg.SettingsDBPath)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("unexpected default cors origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := Load()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.HTTPTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestInvalidEnvFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("HTTP_TIMEOUT", "soon")

	cfg := Load()

	if cfg.Port != 8080 {
		t.Errorf("expected fallback port, got %d", cfg.Port)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("expected fallback timeout, got %s", cfg.HTTPTimeout)
	}
}
