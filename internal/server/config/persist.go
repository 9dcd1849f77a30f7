// Package config defines the server configuration structure.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Save validates the configuration and writes it to path as a YAML document.
//
// Nothing is written when validation fails: the returned error is a
// *ValidationError carrying every violation, and prior content at path is
// left untouched. Marshal and I/O failures are returned wrapped.
func (c *ServerConfig) Save(path string) error {
	if violations := c.Validate(); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Load reads a configuration from the YAML document at path.
//
// Load performs no validation: a well-formed document carrying illegal
// values loads successfully, and callers must run Validate (or IsValid)
// before trusting the result for runtime use. Unknown fields in the
// document are ignored.
//
// I/O failures are returned wrapped; malformed documents are returned as a
// *ParseError.
func Load(path string) (*ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg ServerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}
	return &cfg, nil
}
