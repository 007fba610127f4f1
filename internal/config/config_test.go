package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/garnizeh/recruitd/internal/config"
)

func TestValidate_InsecureJWT_FailsWhenNotDevelopment(t *testing.T) {
	os.Setenv("RECRUITD_ENV", "production")
	defer os.Unsetenv("RECRUITD_ENV")

	cfg := &config.Config{
		Addr:          ":8080",
		JWTSecret:     "supersecretkey",
		APITimeout:    5 * time.Second,
		QueryTimeout:  2 * time.Second,
		DatabasePath:  "recruitd.db",
		TokenDuration: 7 * 24 * time.Hour,
	}

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for insecure JWT in non-development env")
	}
}

func TestValidate_InsecureJWT_AllowsDevelopment(t *testing.T) {
	os.Setenv("RECRUITD_ENV", "development")
	defer os.Unsetenv("RECRUITD_ENV")

	cfg := &config.Config{
		Addr:          ":8080",
		JWTSecret:     "supersecretkey",
		APITimeout:    5 * time.Second,
		QueryTimeout:  2 * time.Second,
		DatabasePath:  "recruitd.db",
		TokenDuration: 7 * 24 * time.Hour,
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected Validate to succeed in development env, got: %v", err)
	}
}

func TestLoadConfig_YAMLOverridesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	y := "addr: \":9090\"\n" +
		"jwt_secret: \"strongsecret\"\n" +
		"database_path: \"other.db\"\n" +
		"migrate_on_start: false\n"
	if err := os.WriteFile(cfgPath, []byte(y), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("expected addr override, got %q", cfg.Addr)
	}
	if cfg.JWTSecret != "strongsecret" {
		t.Fatalf("expected jwt_secret override, got %q", cfg.JWTSecret)
	}
	if cfg.DatabasePath != "other.db" {
		t.Fatalf("expected database_path override, got %q", cfg.DatabasePath)
	}
	if cfg.MigrateOnStart {
		t.Fatalf("expected migrate_on_start override to false")
	}
	if cfg.TokenDuration != 7*24*time.Hour {
		t.Fatalf("expected default token duration, got %v", cfg.TokenDuration)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := config.LoadConfig("does-not-exist.yaml"); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
