package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("INVENTORY_DATABASE_URL", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected addr :8080, got %q", cfg.Server.Addr)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("expected driver postgres, got %q", cfg.Database.Driver)
	}
	if cfg.Database.MaxOpenConns != 10 {
		t.Errorf("expected 10 max open conns, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.RateLimit.RPS != 0 {
		t.Errorf("expected rate limiting to be opt-in, got rps %v", cfg.RateLimit.RPS)
	}
	if cfg.Ban.Duration != 15*time.Minute {
		t.Errorf("expected 15m ban duration, got %v", cfg.Ban.Duration)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty database url")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/inventory")
	t.Setenv("INVENTORY_SERVER_ADDR", ":9090")
	t.Setenv("INVENTORY_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.URL != "postgres://u:p@localhost:5432/inventory" {
		t.Errorf("expected DATABASE_URL to be honoured, got %q", cfg.Database.URL)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected addr :9090, got %q", cfg.Server.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("INVENTORY_DATABASE_URL", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.yaml")
	content := `
database:
  driver: sqlite
  url: inventory.db
rate_limit:
  rps: 5
auth:
  jwt_secret: s3cret
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("expected sqlite driver, got %q", cfg.Database.Driver)
	}
	if cfg.Database.URL != "inventory.db" {
		t.Errorf("expected url inventory.db, got %q", cfg.Database.URL)
	}
	if cfg.RateLimit.RPS != 5 || cfg.RateLimit.Burst != 20 {
		t.Errorf("expected rps 5 with default burst 20, got %+v", cfg.RateLimit)
	}
	if cfg.Auth.JWTSecret != "s3cret" {
		t.Errorf("expected jwt secret from file, got %q", cfg.Auth.JWTSecret)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Driver: "mysql", URL: "x"}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
