package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the deployment policy knobs. None of them change what a
// table contains; max-variables only bounds how big a table the tool is
// willing to enumerate, and no-color affects rendering.
//
// Example file:
//
//	max-variables: 8
//	no-color: true
type Config struct {
	// MaxVariables caps the number of distinct variables in a formula.
	// Zero means the tool's built-in default.
	MaxVariables int `yaml:"max-variables"`

	NoColor bool `yaml:"no-color"`
}

// Load reads the config from the given path. A missing file is not an
// error; it just means defaults.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("config file not found, using defaults", "path", path)
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if errors.Is(err, io.EOF) {
		// empty file, same as missing
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &config, nil
}

// Write stores the config at the given path.
func (c *Config) Write(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file %s: %w", path, err)
	}
	defer file.Close()

	if err := yaml.NewEncoder(file).Encode(c); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
