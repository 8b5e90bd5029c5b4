package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderOptions holds optional explicit file paths for Load.
type LoaderOptions struct {
	ConfigFile string
	EnvFile    string
}

// LoaderOption customizes Load.
type LoaderOption func(*LoaderOptions)

// WithConfigFile sets an explicit YAML config file path.
func WithConfigFile(path string) LoaderOption {
	return func(o *LoaderOptions) { o.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(o *LoaderOptions) { o.EnvFile = path }
}

// Load reads configuration into a Config, applies defaults and validates it.
// YAML is the base, .env overlays it, and process environment variables win.
func Load(opts ...LoaderOption) (*Config, error) {
	var lo LoaderOptions
	for _, opt := range opts {
		opt(&lo)
	}
	if lo.ConfigFile == "" {
		lo.ConfigFile = findFirst(
			"./cmd/api/config.yml",
			"../cmd/api/config.yml",
			"./config.yml",
		)
	}
	if lo.EnvFile == "" {
		lo.EnvFile = findFirst(
			"./cmd/api/.env",
			"./.env",
			"../.env",
		)
	}

	v := viper.New()

	if lo.ConfigFile != "" {
		v.SetConfigFile(lo.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", lo.ConfigFile, err)
		}
	}

	if lo.EnvFile != "" {
		if err := godotenv.Load(lo.EnvFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", lo.EnvFile, err)
		}
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findFirst returns the first path that exists, or "".
func findFirst(paths ...string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// bindEnvVars maps UPPER_SNAKE environment variables onto nested viper keys
// so AUTH_SECRET reaches auth.secret and SERVER_PORT reaches server.port.
func bindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || pair[1] == "" {
			continue
		}
		key := strings.ToLower(pair[0])
		if idx := strings.Index(key, "_"); idx > 0 {
			nested := key[:idx] + "." + key[idx+1:]
			v.Set(nested, pair[1])
		}
	}
}
