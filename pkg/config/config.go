// Package config loads and validates generator run configuration.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config controls a generation run.
type Config struct {
	// Output is the dataset file to write.
	Output string `yaml:"output" validate:"required"`

	// Compress snappy-encodes the output file.
	Compress bool `yaml:"compress"`

	// Negatives is how many fabricated entity names to sample for
	// negative existence questions.
	Negatives int `yaml:"negatives" validate:"gte=0,lte=1000"`

	// Seed pins the negative-name sampler.
	Seed int64 `yaml:"seed"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output:    "questions.json",
		Negatives: 5,
		Seed:      1,
		LogLevel:  "info",
	}
}

// Load reads a YAML configuration file, applying defaults for absent
// fields, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
