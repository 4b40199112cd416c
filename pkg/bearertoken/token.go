// Package bearertoken provides an immutable value type for bearer credentials.
package bearertoken

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
)

// FingerprintLength is the number of hex characters in a token fingerprint.
const FingerprintLength = 12

// token68 is the credential character set from RFC 7235 Section 2.1:
// one or more alphanumeric or "-._~+/" characters, then optional "=" padding.
var token68 = regexp.MustCompile(`^[A-Za-z0-9\-._~+/]+=*$`)

var (
	// ErrEmptyToken indicates an empty credential string.
	ErrEmptyToken = errors.New("bearer token must not be empty")

	// ErrTokenCharacters indicates characters outside the token68 set.
	ErrTokenCharacters = errors.New("bearer token contains characters outside the token68 set")
)

// Token is an immutable bearer credential.
//
// The zero value is not a valid token; construct one with New. The raw
// value is reachable through String for transport use only and must never
// be written to logs. Use Fingerprint or Masked for diagnostics.
type Token struct {
	value string
}

// New validates raw against the token68 grammar and wraps it as a Token.
func New(raw string) (Token, error) {
	if raw == "" {
		return Token{}, ErrEmptyToken
	}
	if !token68.MatchString(raw) {
		return Token{}, ErrTokenCharacters
	}
	return Token{value: raw}, nil
}

// String returns the raw credential for transport use.
func (t Token) String() string {
	return t.value
}

// IsZero reports whether the token is the unusable zero value.
func (t Token) IsZero() bool {
	return t.value == ""
}

// Fingerprint returns a short hex digest of the token for log correlation.
//
// The fingerprint is the leading FingerprintLength characters of the
// SHA-256 hash. It identifies a credential across log lines without
// disclosing it.
func (t Token) Fingerprint() string {
	h := sha256.Sum256([]byte(t.value))
	return hex.EncodeToString(h[:])[:FingerprintLength]
}

// Masked returns a redacted rendering safe for human-facing output.
// Short tokens are fully redacted; longer ones keep the first and last
// four characters. Example: eyJh...R5cA
func (t Token) Masked() string {
	if len(t.value) < 12 {
		return "***REDACTED***"
	}
	return t.value[:4] + "..." + t.value[len(t.value)-4:]
}

// MarshalText implements encoding.TextMarshaler.
func (t Token) MarshalText() ([]byte, error) {
	return []byte(t.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Token) UnmarshalText(text []byte) error {
	tok, err := New(string(text))
	if err != nil {
		return err
	}
	*t = tok
	return nil
}
