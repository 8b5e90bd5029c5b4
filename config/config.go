// Package config loads the application configuration from a YAML file,
// a .env file and the process environment, in that order of precedence
// (environment wins).
package config

import (
	"fmt"

	"github.com/mfrancor/characters-api/auth"
	"github.com/mfrancor/characters-api/database"
	"github.com/mfrancor/characters-api/logger"
	"github.com/mfrancor/characters-api/server"
)

// BaseConfig holds identity fields shared by every deployment.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// ApplyDefaults fills in sensible defaults for the base section.
func (c *BaseConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "characters-api"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
}

// Validate checks the base section.
func (c *BaseConfig) Validate() error {
	switch c.Environment {
	case "development", "staging", "production":
		return nil
	}
	return fmt.Errorf("base.environment must be one of [development, staging, production] (got: %s)", c.Environment)
}

// Config is the full application configuration.
type Config struct {
	Base     BaseConfig      `yaml:"base" mapstructure:"base"`
	Server   server.Config   `yaml:"server" mapstructure:"server"`
	Logging  logger.Config   `yaml:"logging" mapstructure:"logging"`
	Database database.Config `yaml:"database" mapstructure:"database"`
	Auth     auth.Config     `yaml:"auth" mapstructure:"auth"`
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	c.Base.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.Auth.ApplyDefaults()
}

// Validate validates every section and returns the first failure.
func (c *Config) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}
