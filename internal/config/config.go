// Package config loads and validates the cliquer run configuration.
//
// A config file is optional. Values are layered: Default(), then the YAML
// file, then command-line flags (applied by the caller), then Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every load or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	Input     Input     `yaml:"input"`
	Enumerate Enumerate `yaml:"enumerate"`
	Output    Output    `yaml:"output"`
	Log       Log       `yaml:"log"`
}

// Input controls how the edge list is parsed.
type Input struct {
	MatrixMarket bool `yaml:"matrix_market"`
	MaxLineBytes int  `yaml:"max_line_bytes" validate:"gte=0"`
}

// Enumerate controls the clique search.
type Enumerate struct {
	Variants []string `yaml:"variants" validate:"min=1,dive,oneof=plain pivot"`
	Pivot    string   `yaml:"pivot" validate:"oneof=random maxdegree max-degree tomita first"`
	Seed     int64    `yaml:"seed"`
	Workers  int      `yaml:"workers" validate:"gte=1,lte=256"`
}

// Output controls rendering.
type Output struct {
	Format     string `yaml:"format" validate:"oneof=text json yaml"`
	Local      bool   `yaml:"local_coefficients"`
	MetricsOut string `yaml:"metrics_out"`
}

// Log controls the slog handler.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns a configuration that validates as is.
func Default() *Config {
	return &Config{
		Enumerate: Enumerate{
			Variants: []string{"plain", "pivot"},
			Pivot:    "random",
			Seed:     1,
			Workers:  1,
		},
		Output: Output{Format: "text"},
		Log:    Log{Level: "info", Format: "text"},
	}
}

var validate = validator.New()

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Decode overlays YAML from r onto Default(). Unknown keys are rejected.
// The result is not validated; callers apply flag overrides first.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Load reads path with Decode. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
	}

	return Decode(bytes.NewReader(data))
}
