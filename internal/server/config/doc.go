// Package config provides server configuration for uacore.
//
// This package defines the configuration structure and its validation:
//
//   - spec.go: ServerConfig, Endpoint and TCPConfig definitions
//   - security.go: security policy and security mode member sets
//   - default.go: default values and factory presets
//   - verify.go: invariant checks producing violation lists
//   - sanitize.go: log sanitization (hide credential secrets)
//   - persist.go: YAML save/load of the full structure
//
// Configuration is loaded either directly from a YAML document via Load or
// through internal/infra/confloader, which layers environment variables on
// top of the file. Loading never validates: run Validate (or IsValid) before
// putting a configuration into service.
package config
