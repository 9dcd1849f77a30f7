// Package output provides output formatting for uacore-cli.
//
// It supports YAML, JSON and plain table output behind a common
// Formatter interface so commands can honor the --output flag without
// knowing the concrete encoding.
package output
