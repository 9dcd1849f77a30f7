// Package config defines the server configuration structure.
package config

import "strings"

// Sanitize returns a copy of the config with endpoint passwords masked.
//
// This is used for logging configuration without exposing secrets. The
// endpoint slice is copied so the original is never modified.
func Sanitize(cfg *ServerConfig) *ServerConfig {
	sanitized := *cfg

	sanitized.Endpoints = make([]Endpoint, len(cfg.Endpoints))
	copy(sanitized.Endpoints, cfg.Endpoints)
	for i := range sanitized.Endpoints {
		if sanitized.Endpoints[i].Pass != "" {
			sanitized.Endpoints[i].Pass = maskSecret(sanitized.Endpoints[i].Pass)
		}
	}

	return &sanitized
}

// maskSecret masks a secret value for safe logging.
func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
