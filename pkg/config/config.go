// Package config holds the runtime tunables of the kernos process layer
// and loads them from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration errors.
var (
	ErrBadMaxProc = errors.New("max_proc must be at least 1")
	ErrBadKeySpan = errors.New("min_sem_key must compare below max_sem_key")
)

// Config carries the compile-time constants of the original design as
// runtime tunables. The defaults reproduce the classic values.
type Config struct {
	// MaxProc is the capacity of the PCB pool and of the semaphore
	// descriptor pool. Exceeding it is reported to callers, never grown
	// past.
	MaxProc int `yaml:"max_proc"`

	// MinSemKey and MaxSemKey become the sentinel keys bounding the
	// active semaphore list. Every real semaphore key must compare
	// strictly between them.
	MinSemKey int64 `yaml:"min_sem_key"`
	MaxSemKey int64 `yaml:"max_sem_key"`

	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	LogLevel string `yaml:"log_level"`
	// LogPath, when non-empty, duplicates the log into a file.
	LogPath string `yaml:"log_path"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		MaxProc:   20,
		MinSemKey: math.MinInt64,
		MaxSemKey: math.MaxInt64,
		LogLevel:  "INFO",
	}
}

// Load reads a YAML configuration file, applying defaults for any field
// the file omits, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the process layer cannot honor.
func (c *Config) Validate() error {
	if c.MaxProc < 1 {
		return ErrBadMaxProc
	}
	if c.MinSemKey >= c.MaxSemKey {
		return ErrBadKeySpan
	}
	return nil
}
