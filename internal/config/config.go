// Package config loads the optional YAML settings file.
//
// The file is named explicitly with --config; there is no discovery. Values in
// the file act as defaults that explicit command-line flags override.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the settings file. Pointer fields distinguish "unset" from
// an explicit zero.
type Config struct {
	// Gap is the single-character gap symbol.
	Gap string `yaml:"gap"`

	// MaxMissing is the number of gaps a column may hold and still be core.
	MaxMissing *int `yaml:"max_missing"`

	// Threads is the worker count for the column pass (0 = all CPUs).
	Threads *int `yaml:"threads"`

	// Output is the stats output format.
	Output string `yaml:"output"`

	// Sites selects per-site rows: none, snp, core-snp, core, all.
	Sites string `yaml:"sites"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Load reads path. An empty path returns the zero Config.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that can be checked without knowing the command.
func (c Config) Validate() error {
	if c.Gap != "" && len(c.Gap) != 1 {
		return fmt.Errorf("gap must be a single character, got %q", c.Gap)
	}
	if c.MaxMissing != nil && *c.MaxMissing < 0 {
		return fmt.Errorf("max_missing must be >= 0, got %d", *c.MaxMissing)
	}
	if c.Threads != nil && *c.Threads < 0 {
		return fmt.Errorf("threads must be >= 0, got %d", *c.Threads)
	}
	return nil
}
