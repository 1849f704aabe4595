// Package config loads mlkem-core's CLI configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI's configuration: which parameter set to use by
// default, how verbosely to log, and how to render key/ciphertext output.
type Config struct {
	ParameterSet string        `yaml:"parameter_set"`
	Logging      LoggingConfig `yaml:"logging"`
	Output       OutputConfig  `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// OutputConfig controls how byte strings (keys, ciphertexts, signatures)
// are rendered on stdout.
type OutputConfig struct {
	Encoding string `yaml:"encoding"` // hex or base64
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	c.setDefaults()
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &c, nil
}

func (c *Config) setDefaults() {
	if c.ParameterSet == "" {
		c.ParameterSet = "ML-KEM-768"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Output.Encoding == "" {
		c.Output.Encoding = "hex"
	}
}

func (c *Config) validate() error {
	validParamSets := map[string]bool{"ML-KEM-512": true, "ML-KEM-768": true, "ML-KEM-1024": true}
	if !validParamSets[c.ParameterSet] {
		return fmt.Errorf("unknown parameter set: %s", c.ParameterSet)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	validEncodings := map[string]bool{"hex": true, "base64": true}
	if !validEncodings[c.Output.Encoding] {
		return fmt.Errorf("invalid output encoding: %s", c.Output.Encoding)
	}

	return nil
}

// GenerateDefaultConfig returns a Config populated with the CLI's
// defaults, suitable for writing out as a starter config file.
func GenerateDefaultConfig() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}
