// Package logger provides structured logging for uacore.
//
// It wraps the standard library log/slog to provide structured JSON
// logging with automatic redaction of credential attributes. Endpoint
// passwords from the server configuration must never reach a log sink,
// even when a whole endpoint struct is logged as a group.
package logger
