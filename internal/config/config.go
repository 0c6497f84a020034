// Package config loads CLI settings from YAML.
package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/js-bridge/adapter"
	"github.com/wippyai/js-bridge/errors"
	"github.com/wippyai/js-bridge/guest"
	"github.com/wippyai/js-bridge/wire"
)

// Config is the jsbridge.yml schema.
type Config struct {
	NullableEncoding string       `yaml:"nullable_encoding"`
	LogLevel         string       `yaml:"log_level"`
	Guest            guest.Config `yaml:"guest"`
	InitialCapacity  int          `yaml:"initial_capacity"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		NullableEncoding: adapter.NullableEncodeNull.String(),
		LogLevel:         "warn",
		Guest:            guest.DefaultConfig(),
		InitialCapacity:  wire.DefaultCapacity,
	}
}

// Load reads and validates path. Keys absent from the file keep their
// defaults; unknown keys are rejected.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.InvalidInput(errors.PhaseConfig, "empty config path")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults and validates the result.
// Empty input yields the defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidConfig, err, "parse yaml")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := adapter.ParseNullableEncoding(c.NullableEncoding); err != nil {
		return invalid("nullable_encoding", c.NullableEncoding, err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return invalid("log_level", c.LogLevel, err)
	}
	if c.InitialCapacity < 0 {
		return invalid("initial_capacity", c.InitialCapacity, fmt.Errorf("must not be negative"))
	}
	if err := c.Guest.Validate(); err != nil {
		return invalid("guest", c.Guest, err)
	}
	return nil
}

func invalid(key string, v any, cause error) error {
	return errors.New(errors.PhaseConfig, errors.KindInvalidConfig).
		Path(key).
		Value(v).
		Cause(cause).
		Detail("invalid %s", key).
		Build()
}

// Nullable returns the parsed nullable encoding. Call after Validate.
func (c *Config) Nullable() adapter.NullableEncoding {
	m, _ := adapter.ParseNullableEncoding(c.NullableEncoding)
	return m
}

// Level returns the parsed log level. Call after Validate.
func (c *Config) Level() zapcore.Level {
	l, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}
	return l
}

// FactoryOptions returns the adapter options these settings imply.
func (c *Config) FactoryOptions() []adapter.Option {
	return []adapter.Option{adapter.WithNullableEncoding(c.Nullable())}
}

// NewBuffer returns an empty buffer with the configured capacity.
func (c *Config) NewBuffer() *wire.Buffer {
	return wire.NewBufferSize(c.InitialCapacity)
}
