package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"newsdesk/internal/config"
)

// clearEnv blanks every variable Load reads so values from the host
// environment cannot leak into assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ADMIN_TOKEN", "DATABASE_URL", "DATABASE_NAME", "LOG_LEVEL",
		"CORS_ORIGINS", "RATELIMIT_PER_MINUTE", "MAX_BODY_BYTES",
		"SHUTDOWN_TIMEOUT", "APP_VERSION", "CONFIG_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 8000 {
		t.Errorf("Port = %d, want 8000", cfg.Port)
	}
	if cfg.DatabaseName != "newsdesk" {
		t.Errorf("DatabaseName = %q, want newsdesk", cfg.DatabaseName)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
	if cfg.AdminToken != "" {
		t.Errorf("AdminToken = %q, want empty", cfg.AdminToken)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	clearEnv(t)

	if _, err := config.Load(); err == nil {
		t.Fatal("Load without DATABASE_URL: want error, got nil")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_TOKEN", "s3cret")
	t.Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.AdminToken != "s3cret" {
		t.Errorf("AdminToken = %q", cfg.AdminToken)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v, want 2 entries", cfg.CORSOrigins)
	}
}

func TestLoad_FileOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("PORT", "9000")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `server:
  port: 9100
  log_level: debug
  shutdown_timeout: 10s
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9100 {
		t.Errorf("Port = %d, want file value 9100", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: ["), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := config.Load(); err == nil {
		t.Fatal("Load with malformed YAML: want error, got nil")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("PORT", "70000")

	if _, err := config.Load(); err == nil {
		t.Fatal("Load with out-of-range port: want error, got nil")
	}
}
