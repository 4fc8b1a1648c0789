package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.MaxBodySize != 15<<20 {
		t.Errorf("max body size = %d", cfg.Server.MaxBodySize)
	}
	if cfg.Database.Name != "jobdeck" {
		t.Errorf("db name = %q", cfg.Database.Name)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.PerMinute != 120 {
		t.Errorf("ratelimit defaults wrong: %+v", cfg.RateLimit)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging defaults wrong: %+v", cfg.Logging)
	}
}

func TestLoadConfigYAMLAndEnvExpansion(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "hunter2")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
database:
  host: "db.internal"
  password: "${TEST_DB_PASSWORD}"
auth:
  verify_url: "https://id.example.test/verify"
  timeout: 10s
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Password != "hunter2" {
		t.Errorf("env var not expanded: %q", cfg.Database.Password)
	}
	if cfg.Auth.Timeout != 10*time.Second {
		t.Errorf("auth timeout = %v", cfg.Auth.Timeout)
	}
	// Untouched values keep their defaults
	if cfg.Database.Port != 5432 {
		t.Errorf("db port = %d, want default 5432", cfg.Database.Port)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DB_HOST", "env-db")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Database.Host != "env-db" {
		t.Errorf("db host = %q", cfg.Database.Host)
	}
	if cfg.RateLimit.Enabled {
		t.Error("rate limit should be disabled via env")
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = 5433
	cfg.Database.User = "app"
	cfg.Database.Password = "secret"
	cfg.Database.Name = "jobdeck"
	cfg.Database.SSLMode = "require"

	dsn := cfg.DSN()
	for _, part := range []string{"host=db.internal", "port=5433", "user=app", "password=secret", "dbname=jobdeck", "sslmode=require"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("dsn missing %q: %s", part, dsn)
		}
	}
}
