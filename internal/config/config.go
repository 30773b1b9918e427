// Package config loads runtime configuration: the account-number to display
// name mapping and optional overrides for the statement-section marker
// phrases. A missing config file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
)

type Config struct {
	// AccountMapping maps account numbers to short display names.
	AccountMapping map[string]string `json:"account_mapping"`
	// MarkerPhrases overrides the built-in statement-section markers
	// (opening/closing balance rows, running totals) when set.
	MarkerPhrases []string `json:"marker_phrases"`
}

// Default returns the compiled-in configuration used when no config file is
// given.
func Default() *Config {
	return &Config{
		AccountMapping: map[string]string{},
	}
}

// Read loads the YAML config at path. An empty path or a nonexistent file
// yields the default configuration.
func Read(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if cfg.AccountMapping == nil {
		cfg.AccountMapping = map[string]string{}
	}

	return cfg, nil
}
