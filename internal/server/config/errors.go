// Package config defines the server configuration structure.
package config

import (
	"fmt"
	"strings"
)

// ValidationError reports a configuration that failed validation. It carries
// every violation so that callers and tests can assert on why an operation
// was refused, not just that it was.
type ValidationError struct {
	Violations []Violation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "config: invalid configuration"
	}
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return "config: invalid configuration: " + strings.Join(msgs, "; ")
}

// ParseError reports a persisted document that could not be parsed into the
// configuration schema.
type ParseError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parse %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Cause
}
