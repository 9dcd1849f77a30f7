// Package confloader loads server configuration from layered sources.
package confloader

import (
	"fmt"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "UACORE_"

// Loader merges configuration sources and unmarshals the result into a
// target struct.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigFile sets the configuration file path.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load merges all configured sources and unmarshals into target. Later
// sources override earlier ones: file first, then environment variables.
//
// target should arrive pre-populated with defaults (e.g. config.New);
// only keys present in a source are overridden.
func (l *Loader) Load(target any) error {
	if l.filePath != "" {
		if err := l.k.Load(file.Provider(l.filePath), kyaml.Parser()); err != nil {
			return fmt.Errorf("confloader: load file %s: %w", l.filePath, err)
		}
	}

	if err := l.k.Load(env.Provider(l.envPrefix, ".", l.envToKey), nil); err != nil {
		return fmt.Errorf("confloader: load env: %w", err)
	}

	if err := l.k.Unmarshal("", target); err != nil {
		return fmt.Errorf("confloader: unmarshal: %w", err)
	}
	return nil
}

// LoadMap layers a map source on top of what has been loaded so far,
// useful for flags and tests.
func (l *Loader) LoadMap(data map[string]any) error {
	if err := l.k.Load(mapProvider(data), nil); err != nil {
		return fmt.Errorf("confloader: load map: %w", err)
	}
	return nil
}

// envToKey maps an environment variable name to a configuration key.
// Configuration keys contain underscores themselves (max_array_length,
// tcp_config), so a double underscore separates nesting levels:
//
//	UACORE_MAX_ARRAY_LENGTH   -> max_array_length
//	UACORE_TCP_CONFIG__PORT   -> tcp_config.port
func (l *Loader) envToKey(s string) string {
	s = strings.TrimPrefix(s, l.envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
