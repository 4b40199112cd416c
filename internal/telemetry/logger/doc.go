// Package logger provides structured logging for auth-tokens.
//
// This package wraps log/slog for structured logging:
//
//   - logger.go: handler configuration and runtime level control
//   - redact.go: Sensitive data redaction
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering
//   - Automatic masking of JWT-shaped string values
//   - Full redaction of values under credential-like keys
package logger
