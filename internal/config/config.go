package config

import (
	"errors"
	"fmt"
	"os"

	"compound-calc/internal/validate"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	History HistoryConfig `yaml:"history"`
	Limits  LimitsConfig  `yaml:"limits"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// HistoryConfig selects the calculation-history backend.
// Backend is one of "memory", "file", "sqlite".
type HistoryConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type LimitsConfig struct {
	MaxPrincipal float64 `yaml:"max_principal"`
	MaxRate      float64 `yaml:"max_rate"`
	MaxTime      int     `yaml:"max_time"`
}

// Default returns a config with all defaults applied, usable without any file.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config without defaulting or validating it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.History.Backend == "" {
		c.History.Backend = "file"
	}
	if c.History.Path == "" && c.History.Backend != "memory" {
		c.History.Path = "data/history.json"
		if c.History.Backend == "sqlite" {
			c.History.Path = "data/history.db"
		}
	}
	def := validate.DefaultLimits()
	if c.Limits.MaxPrincipal == 0 {
		c.Limits.MaxPrincipal = def.MaxPrincipal
	}
	if c.Limits.MaxRate == 0 {
		c.Limits.MaxRate = def.MaxRate
	}
	if c.Limits.MaxTime == 0 {
		c.Limits.MaxTime = def.MaxTime
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	switch c.History.Backend {
	case "memory":
	case "file", "sqlite":
		if c.History.Path == "" {
			return fmt.Errorf("history.path is required for the %s backend", c.History.Backend)
		}
	default:
		return fmt.Errorf("unknown history backend: %q", c.History.Backend)
	}
	if c.Limits.MaxPrincipal <= 0 || c.Limits.MaxRate <= 0 || c.Limits.MaxTime < 1 {
		return errors.New("limits must be positive")
	}
	return nil
}

// ToLimits converts the YAML limits into the validator's shape.
func (l LimitsConfig) ToLimits() validate.Limits {
	return validate.Limits{
		MaxPrincipal: l.MaxPrincipal,
		MaxRate:      l.MaxRate,
		MaxTime:      l.MaxTime,
	}
}
