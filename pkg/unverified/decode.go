// Package unverified extracts identity claims from a JWT without signature verification.
package unverified

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shashiadi/auth-tokens/pkg/bearertoken"
)

// tokenSegments is the number of dot-separated segments in a compact JWT.
const tokenSegments = 3

// payload is the claim set read from the token's second segment.
// Binary claims arrive as base64 text inside the JSON; pointer fields
// keep absent and null claims distinguishable from present ones.
type payload struct {
	Sub *string `json:"sub"`
	Sid *string `json:"sid"`
}

// Decode extracts the unverified identity carried by a bearer token.
//
// See DecodeString for the decoding contract.
func Decode(token bearertoken.Token) (Identity, error) {
	return DecodeString(token.String())
}

// DecodeString extracts the unverified identity carried by a compact JWT.
//
// Only the payload segment is decoded; the header and signature segments
// are never inspected, so the result is whatever the client asserted.
// Decoding is deterministic, allocates nothing shared, and is safe for
// concurrent use. Failures are MalformedTokenError values classified by
// Kind; no partial Identity is ever returned alongside an error.
func DecodeString(raw string) (Identity, error) {
	segments := strings.Split(raw, ".")
	if len(segments) != tokenSegments {
		return Identity{}, ErrSegmentCount.WithDetails(fmt.Sprintf("found %d", len(segments)))
	}

	decoded, err := decodeBase64(segments[1])
	if err != nil {
		return Identity{}, ErrPayloadEncoding.WithDetails("payload segment").WithCause(err)
	}

	var p payload
	if err := json.Unmarshal(decoded, &p); err != nil {
		return Identity{}, ErrPayloadInvalid.WithCause(err)
	}
	if p.Sub == nil {
		return Identity{}, ErrPayloadInvalid.WithDetails(`missing required claim "sub"`)
	}

	userID, err := decodeClaim("sub", *p.Sub)
	if err != nil {
		return Identity{}, err
	}

	if p.Sid == nil {
		return NewIdentity(userID), nil
	}
	sessionID, err := decodeClaim("sid", *p.Sid)
	if err != nil {
		return Identity{}, err
	}
	return NewIdentityWithSession(userID, sessionID), nil
}

// decodeClaim decodes a binary claim value and renders it as a
// canonical lowercase UUID. The 16 claim bytes map onto the UUID in
// order, most significant first.
func decodeClaim(name, value string) (string, error) {
	b, err := decodeBase64(value)
	if err != nil {
		return "", ErrPayloadEncoding.WithDetails(fmt.Sprintf("claim %q", name)).WithCause(err)
	}
	id, err := uuid.FromBytes(b)
	if err != nil {
		return "", ErrUUIDLength.WithDetails(fmt.Sprintf("claim %q requires 16 bytes, found %d", name, len(b)))
	}
	return id.String(), nil
}

// decodeBase64 decodes standard-alphabet base64 with or without padding.
// URL-safe input is rejected.
func decodeBase64(s string) ([]byte, error) {
	if b, err := base64.RawStdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.StdEncoding.DecodeString(s)
}
