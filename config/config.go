// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Log levels and formats accepted by NewLogger.
var (
	Levels  = []string{"debug", "info", "warn", "error"}
	Formats = []string{"text", "json"}
)

// Config describes one calculator run.
type Config struct {
	// Workers bounds Batch parallelism; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	Log Log `yaml:"log"`

	// Metrics enables Prometheus counters when a registerer is supplied.
	Metrics bool `yaml:"metrics"`

	// Descriptors lists the kinds whose presets are registered.
	Descriptors []string `yaml:"descriptors"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used for omitted fields.
func Default() Config {
	return Config{
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load(%s): %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data over Default and validates the result. Unknown
// fields are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config.Parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field domains. Descriptor kinds are checked later,
// against the registry they are resolved in.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalid)
	}
	if !slices.Contains(Levels, c.Log.Level) {
		return fmt.Errorf("log.level=%q: %w", c.Log.Level, ErrInvalid)
	}
	if !slices.Contains(Formats, c.Log.Format) {
		return fmt.Errorf("log.format=%q: %w", c.Log.Format, ErrInvalid)
	}
	seen := make(map[string]struct{}, len(c.Descriptors))
	for _, name := range c.Descriptors {
		if name == "" {
			return fmt.Errorf("descriptors: empty kind: %w", ErrInvalid)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("descriptors: %q listed twice: %w", name, ErrInvalid)
		}
		seen[name] = struct{}{}
	}

	return nil
}
