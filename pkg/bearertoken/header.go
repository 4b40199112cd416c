// Package bearertoken provides an immutable value type for bearer credentials.
package bearertoken

import (
	"fmt"
	"strings"
)

// Scheme is the authorization scheme for bearer credentials.
const Scheme = "Bearer"

// AuthHeader is an Authorization header value carrying a bearer token.
//
// The zero value is not a valid header; construct one with NewAuthHeader
// or ParseAuthHeader.
type AuthHeader struct {
	token Token
}

// NewAuthHeader wraps a token as an Authorization header value.
func NewAuthHeader(token Token) AuthHeader {
	return AuthHeader{token: token}
}

// ParseAuthHeader parses an Authorization header value.
//
// The "Bearer " scheme prefix is optional and matched case-insensitively,
// so both full header values and bare tokens are accepted. A value that is
// only the scheme is rejected as a missing credential.
func ParseAuthHeader(raw string) (AuthHeader, error) {
	value := strings.TrimSpace(raw)
	if scheme, rest, found := strings.Cut(value, " "); found && strings.EqualFold(scheme, Scheme) {
		value = strings.TrimSpace(rest)
	} else if strings.EqualFold(value, Scheme) {
		value = ""
	}

	token, err := New(value)
	if err != nil {
		return AuthHeader{}, fmt.Errorf("parse authorization header: %w", err)
	}
	return AuthHeader{token: token}, nil
}

// Token returns the wrapped bearer token.
func (h AuthHeader) Token() Token {
	return h.token
}

// String returns the full header value, "Bearer " plus the raw token.
// Like Token.String, the result must never be written to logs.
func (h AuthHeader) String() string {
	return Scheme + " " + h.token.String()
}

// MarshalText implements encoding.TextMarshaler.
func (h AuthHeader) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *AuthHeader) UnmarshalText(text []byte) error {
	parsed, err := ParseAuthHeader(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
