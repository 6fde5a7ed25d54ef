// Package config provides configuration management for the writegood CLI.
//
// Settings are layered with koanf: built-in defaults, then a
// .writegood.yaml file, then WRITEGOOD_* environment variables, then
// explicitly set command-line flags.
package config

import (
	"fmt"

	"github.com/leapstack-labs/writegood/internal/cli/output"
	"github.com/leapstack-labs/writegood/pkg/lint"
)

// Default values.
const (
	DefaultOutput      = "auto"
	DefaultConcurrency = 4
	DefaultServerPort  = 8765
)

// Config holds all CLI configuration options.
type Config struct {
	// Checks toggles rules by name, e.g. {"passive": false, "eprime": true}.
	Checks       map[string]bool `koanf:"checks"`
	Whitelist    []string        `koanf:"whitelist"`
	OutputFormat string          `koanf:"output"`
	Verbose      bool            `koanf:"verbose"`
	Concurrency  int             `koanf:"concurrency"`
	Server       *ServerConfig   `koanf:"server"`
}

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	Port int `koanf:"port"`
	// SessionSecret signs the playground cookie, e.g. from
	// WRITEGOOD_SERVER__SESSION_SECRET.
	SessionSecret string `koanf:"session_secret"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Checks:       map[string]bool{},
		OutputFormat: DefaultOutput,
		Concurrency:  DefaultConcurrency,
		Server:       &ServerConfig{Port: DefaultServerPort},
	}
}

// GetServerConfig returns the server config with defaults applied for any unset values.
func (c *Config) GetServerConfig() *ServerConfig {
	if c.Server == nil {
		return &ServerConfig{Port: DefaultServerPort}
	}
	srv := *c.Server
	if srv.Port == 0 {
		srv.Port = DefaultServerPort
	}
	return &srv
}

// LintConfig converts the checks and whitelist into an analyzer configuration.
func (c *Config) LintConfig() *lint.Config {
	lintCfg := lint.NewConfig()
	if c == nil {
		return lintCfg
	}
	for name, enabled := range c.Checks {
		lintCfg.Set(name, enabled)
	}
	lintCfg.Allow(c.Whitelist...)
	return lintCfg
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	if c.Server != nil && (c.Server.Port < 0 || c.Server.Port > 65535) {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}
