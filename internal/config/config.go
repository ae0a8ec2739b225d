package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the martianrobots command.
type Config struct {
	Log LogConfig `yaml:"log"`

	// Render prints each run's grid to stderr after its results.
	Render bool `yaml:"render"`

	// Workers bounds how many input files are simulated at once.
	Workers int `yaml:"workers"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info", Format: "console"},
		Workers: 4,
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be debug, info, warn or error", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be console or json", c.Log.Format)
	}
	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	return nil
}
