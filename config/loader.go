// Package config is responsible for loading the optional YAML configuration
// file, unmarshalling it into the structures defined in the datamodel module,
// and validating it.
package config

import (
	"fmt"
	"os"

	"github.com/savantbuild/greeter/datamodel"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultRepeat is the number of greetings issued when none is configured.
	DefaultRepeat = 1
	// DefaultVerbosity keeps stderr quiet unless something goes wrong.
	DefaultVerbosity = 1
)

// LoadConfig loads and validates the configuration from a YAML file.
func LoadConfig(filePath string) (*datamodel.Config, error) {
	yamlFile, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", filePath, err)
	}

	var config datamodel.Config
	if err := yaml.Unmarshal(yamlFile, &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling YAML from %s: %w", filePath, err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	setDefaults(&config)

	return &config, nil
}

// Default returns the configuration used when no file is given.
func Default() *datamodel.Config {
	var config datamodel.Config
	setDefaults(&config)
	return &config
}

// setDefaults applies default values to the configuration where not specified.
func setDefaults(cfg *datamodel.Config) {
	if cfg.Greeting.Repeat == 0 {
		cfg.Greeting.Repeat = DefaultRepeat
	}
	if cfg.Logging.Verbosity == nil {
		v := DefaultVerbosity
		cfg.Logging.Verbosity = &v
	}
}

// validateConfig performs semantic validation on the loaded configuration.
func validateConfig(cfg *datamodel.Config) error {
	if cfg.Greeting.Repeat < 0 {
		return fmt.Errorf("greeting repeat must not be negative, got %d", cfg.Greeting.Repeat)
	}
	if v := cfg.Logging.Verbosity; v != nil && (*v < 0 || *v > 3) {
		return fmt.Errorf("logging verbosity must be between 0 and 3, got %d", *v)
	}
	return nil
}
