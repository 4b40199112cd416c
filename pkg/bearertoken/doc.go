// Package bearertoken provides an immutable value type for bearer credentials.
//
// This package implements the Authorization header handling defined by
// RFC 6750 (OAuth 2.0 Bearer Token Usage).
//
// Token Format:
//
//   - Characters: token68 set (A-Z, a-z, 0-9, "-", ".", "_", "~", "+", "/")
//   - Padding: optional trailing "=" characters
//   - Never empty
//
// Header Format:
//
//   - Scheme: Bearer (case-insensitive on parse)
//   - Value: "Bearer " followed by the token
//
// Security:
//
//   - Tokens are opaque credentials and must never appear in logs
//   - Fingerprint provides a SHA-256 based correlation id safe for logging
//   - Masked provides a first/last hint with the middle elided
package bearertoken
