package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Base.Environment != "development" {
		t.Errorf("base.environment = %q, want development", cfg.Base.Environment)
	}
	if !cfg.Base.Debug {
		t.Error("base.debug = false, want true in development")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Auth.TTL != time.Hour {
		t.Errorf("auth.ttl = %v, want 1h", cfg.Auth.TTL)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("auth.bcrypt_cost = %d, want 12", cfg.Auth.BcryptCost)
	}
	if cfg.Database.Path != "characters.db" {
		t.Errorf("database.path = %q, want characters.db", cfg.Database.Path)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.ApplyDefaults()
		cfg.Auth.Secret = "test-secret"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"bad environment", func(c *Config) { c.Base.Environment = "qa" }, true},
		{"missing secret", func(c *Config) { c.Auth.Secret = "" }, true},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
		{"bad db log level", func(c *Config) { c.Database.LogLevel = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()

	configFile := filepath.Join(dir, "config.yml")
	yaml := `
base:
  name: characters-api
  environment: production
server:
  port: 9090
auth:
  ttl: 30m
`
	if err := os.WriteFile(configFile, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("AUTH_SECRET=from-env-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(WithConfigFile(configFile), WithEnvFile(envFile))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Base.Environment != "production" {
		t.Errorf("base.environment = %q, want production", cfg.Base.Environment)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Auth.TTL != 30*time.Minute {
		t.Errorf("auth.ttl = %v, want 30m", cfg.Auth.TTL)
	}
	if cfg.Auth.Secret != "from-env-file" {
		t.Errorf("auth.secret = %q, want value from .env", cfg.Auth.Secret)
	}
	// Unset sections still get defaults.
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("auth.bcrypt_cost = %d, want default 12", cfg.Auth.BcryptCost)
	}
}

func TestLoadMissingSecretFails(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configFile, []byte("base:\n  name: characters-api\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AUTH_SECRET", "")

	if _, err := Load(WithConfigFile(configFile), WithEnvFile(envFile)); err == nil {
		t.Error("Load() error = nil, want validation failure for missing secret")
	}
}
