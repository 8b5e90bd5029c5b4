package database

import "fmt"

// Config holds database configuration.
type Config struct {
	// Path is the sqlite database file (":memory:" for tests).
	Path string `yaml:"path" mapstructure:"path"`

	MaxOpenConns int `yaml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
	MaxRetries   int `yaml:"max_retries" mapstructure:"max_retries"`

	// LogLevel controls GORM statement logging: silent, error, warn, info.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Path == "" {
		c.Path = "characters.db"
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 10
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 5
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.MaxOpenConns < 0 {
		return fmt.Errorf("database.max_open_conns must be non-negative (got: %d)", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns must be non-negative (got: %d)", c.MaxIdleConns)
	}
	switch c.LogLevel {
	case "silent", "error", "warn", "info":
	default:
		return fmt.Errorf("database.log_level must be one of [silent, error, warn, info] (got: %s)", c.LogLevel)
	}
	return nil
}
