// Package config loads the calc configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calculator"
)

// Config holds all calc configuration.
type Config struct {
	// Precision is the precision in bits of intermediate results.
	Precision uint `yaml:"precision"`
	// Digits is the number of significant digits shown in results, or -1 for
	// as many as it takes to be exact.
	Digits int `yaml:"digits"`

	Logging LoggingConfig `yaml:"logging"`
	Keys    KeysConfig    `yaml:"keys"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	// File is where logs go. The interactive calculator only logs when a file
	// is set, since the terminal is in use.
	File string `yaml:"file"`
}

// KeysConfig overrides the keys bound to commands in the interactive
// calculator. Each entry is a list of key names like "enter" or "ctrl+c".
// Symbol keys are fixed.
type KeysConfig struct {
	Evaluate []string `yaml:"evaluate,omitempty"`
	Clear    []string `yaml:"clear,omitempty"`
	Quit     []string `yaml:"quit,omitempty"`
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	return &Config{
		Precision: 64,
		Digits:    calculator.DefaultDigits,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a configuration file. Fields absent from the file keep their
// defaults. If path is empty or the file does not exist, the result is the
// default configuration.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every field has a usable value.
func (c *Config) Validate() error {
	if c.Precision == 0 {
		return errors.New("precision must be positive")
	}
	if c.Digits < -1 || c.Digits == 0 || c.Digits > 17 {
		return fmt.Errorf("digits must be -1 or between 1 and 17, not %d", c.Digits)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging level: %w", err)
	}
	return nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
