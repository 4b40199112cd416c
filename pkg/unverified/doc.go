// Package unverified extracts identity claims from a JWT without signature verification.
//
// This package reads the payload of a compact JWT and surfaces the
// user and session identifiers it carries, for logging and diagnostics
// on paths that run before (or without) signature verification.
//
// Token Format:
//
//   - Compact form: header.payload.signature (exactly three segments)
//   - Payload: standard-alphabet Base64, padding optional
//   - Claims: sub (required) and sid (optional), each a Base64 encoded
//     16-byte value rendered as a canonical UUID string
//
// Security:
//
//   - No signature, issuer, or expiry validation of any kind
//   - Results are claims an arbitrary client asserted about itself
//   - Results must never feed authorization decisions
package unverified
