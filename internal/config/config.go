// Package config loads the engine's runtime configuration from a
// YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gtm-studio/icp-engine/internal/domain"
)

// Config holds the engine's runtime configuration.
type Config struct {
	ListenAddr       string `yaml:"listen_addr"`
	LogPath          string `yaml:"log_path"`
	LogLevel         string `yaml:"log_level"`
	NamingConvention string `yaml:"naming_convention"`
	MaxSessions      int    `yaml:"max_sessions"`
}

// Load reads a YAML config file, applies defaults, and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":9820"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.NamingConvention == "" {
		c.NamingConvention = string(domain.NamingAuto)
	}
	if c.MaxSessions == 0 {
		c.MaxSessions = 64
	}
}

func (c *Config) validate() error {
	var problems []string

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log_level %q is not one of debug, info, warn, error", c.LogLevel))
	}
	switch domain.NamingConvention(c.NamingConvention) {
	case domain.NamingAuto, domain.NamingCustom:
	default:
		problems = append(problems, fmt.Sprintf("naming_convention %q is not one of auto, custom", c.NamingConvention))
	}
	if c.MaxSessions < 0 {
		problems = append(problems, "max_sessions must not be negative")
	}

	if len(problems) > 0 {
		return &domain.EngineError{
			Code:    domain.ErrConfigInvalid.Code,
			Message: fmt.Sprintf("%s: %v", domain.ErrConfigInvalid.Message, problems),
		}
	}
	return nil
}
