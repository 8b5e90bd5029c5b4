package auth

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds authentication configuration. The secret and TTL are read
// once at startup and injected; nothing in this package reads ambient state.
type Config struct {
	// Secret is the HMAC signing key for tokens.
	Secret string `yaml:"secret" mapstructure:"secret"`

	// TTL is the lifetime of issued tokens (default: 1h).
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`

	// BcryptCost is the bcrypt work factor (default: 12, range: 4-31).
	BcryptCost int `yaml:"bcrypt_cost" mapstructure:"bcrypt_cost"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.TTL == 0 {
		c.TTL = time.Hour
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = 12
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("auth.secret is required")
	}
	if c.TTL < 0 {
		return errors.New("auth.ttl must be non-negative")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return errors.New("auth.bcrypt_cost must be between 4 and 31")
	}
	return nil
}
