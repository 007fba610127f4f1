package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const insecureDefaultSecret = "supersecretkey"

type Config struct {
	Addr           string        `yaml:"addr"`
	JWTSecret      string        `yaml:"jwt_secret"`
	APITimeout     time.Duration `yaml:"timeout"`
	QueryTimeout   time.Duration `yaml:"query_timeout"`
	DatabasePath   string        `yaml:"database_path"`
	TokenDuration  time.Duration `yaml:"token_duration"`
	PasswordPepper string        `yaml:"password_pepper"`
	MigrateOnStart bool          `yaml:"migrate_on_start"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:           getEnv("RECRUITD_ADDR", ":8080"),
		JWTSecret:      getEnv("RECRUITD_JWT_SECRET", insecureDefaultSecret),
		APITimeout:     15 * time.Second,
		QueryTimeout:   2 * time.Second,
		DatabasePath:   getEnv("RECRUITD_DATABASE_PATH", "recruitd.db"),
		TokenDuration:  7 * 24 * time.Hour,
		PasswordPepper: getEnv("RECRUITD_PASSWORD_PEPPER", "recruitd"),
		MigrateOnStart: true,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations that must not reach production. The
// insecure default JWT secret is only allowed when RECRUITD_ENV=development.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.APITimeout <= 0 || c.QueryTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	if c.TokenDuration <= 0 {
		return fmt.Errorf("token_duration must be positive")
	}
	if c.JWTSecret == insecureDefaultSecret && os.Getenv("RECRUITD_ENV") != "development" {
		return fmt.Errorf("refusing to run with the default jwt_secret outside development")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
