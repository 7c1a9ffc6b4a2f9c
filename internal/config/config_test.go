package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadParsesDurations(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  env: local
jwt:
  secret: test-secret
  expires_in: 30m
  refresh_in: 72h
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.JWT.ExpiresIn != 30*time.Minute {
		t.Errorf("expected 30m expires_in, got %v", cfg.JWT.ExpiresIn)
	}
	if cfg.JWT.RefreshIn != 72*time.Hour {
		t.Errorf("expected 72h refresh_in, got %v", cfg.JWT.RefreshIn)
	}
}

func TestLoadKeepsDefaultsWhenOmitted(t *testing.T) {
	path := writeConfig(t, `
server:
  env: local
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.JWT.ExpiresIn != 15*time.Minute {
		t.Errorf("expected default 15m expires_in, got %v", cfg.JWT.ExpiresIn)
	}
	if cfg.Database.MaxOpen != 20 {
		t.Errorf("expected default max_open 20, got %d", cfg.Database.MaxOpen)
	}
}

func TestLoadRejectsShortProductionSecret(t *testing.T) {
	path := writeConfig(t, `
server:
  env: production
jwt:
  secret: short
`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for short jwt.secret in production")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "env-secret-wins-over-yaml-values-here")

	path := writeConfig(t, `
server:
  env: local
database:
  host: 127.0.0.1
jwt:
  secret: yaml-secret
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("expected env override for DB host, got %s", cfg.Database.Host)
	}
	if cfg.JWT.Secret != "env-secret-wins-over-yaml-values-here" {
		t.Errorf("expected env override for jwt secret, got %s", cfg.JWT.Secret)
	}
}

func TestIsDevelopment(t *testing.T) {
	for _, env := range []string{"local", "dev", "development"} {
		cfg := &Config{Server: ServerConfig{Env: env}}
		if !cfg.IsDevelopment() {
			t.Errorf("%s should be development", env)
		}
	}
	cfg := &Config{Server: ServerConfig{Env: "production"}}
	if cfg.IsDevelopment() {
		t.Error("production should not be development")
	}
}
