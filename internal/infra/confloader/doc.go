// Package confloader loads server configuration from layered sources.
//
// It uses koanf to merge sources with priority (highest to lowest):
//
//  1. Environment variables (UACORE_ prefix)
//  2. Configuration file (YAML)
//  3. Defaults carried by the pre-populated target struct
//
// The loader never validates: callers get the merged snapshot and are
// responsible for running config.Validate before putting it into service.
// The watcher reports file changes so callers can load a fresh snapshot;
// configurations are replaced wholesale, never mutated in place.
package confloader
