// Package config provides the runtime configuration of the scasm tools.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/scasm/core"
)

// Output formats understood by the tokens command.
const (
	FormatTable = "table"
	FormatPlain = "plain"
)

// Config holds the settings shared by every command.
type Config struct {
	// Number of distinct lines the classifier remembers. Zero disables
	// the cache.
	CacheSize int    `yaml:"cache_size"`
	LogLevel  string `yaml:"log_level"`
	Format    string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CacheSize: 1024,
		LogLevel:  "info",
		Format:    FormatTable,
	}
}

// LoadFile reads a YAML file over the defaults. Unknown keys are rejected.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// WithEnv overrides settings from SCASM_CACHE_SIZE, SCASM_LOG_LEVEL and
// SCASM_FORMAT.
func (c Config) WithEnv() Config {
	c.CacheSize = env.Int("SCASM_CACHE_SIZE", c.CacheSize)
	c.LogLevel = env.Str("SCASM_LOG_LEVEL", c.LogLevel)
	c.Format = env.Str("SCASM_FORMAT", c.Format)
	return c
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}

	switch c.Format {
	case FormatTable, FormatPlain:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses LogLevel. Besides the slog names it accepts "trace".
func (c Config) SlogLevel() (slog.Level, error) {
	if strings.EqualFold(c.LogLevel, "trace") {
		return core.LevelTrace, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}
