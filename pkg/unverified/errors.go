// Package unverified extracts identity claims from a JWT without signature verification.
package unverified

import (
	"errors"
	"fmt"
)

// Kind classifies how a token failed to decode.
type Kind string

const (
	// KindStructure indicates the token is not three dot-separated segments.
	KindStructure Kind = "structure"

	// KindEncoding indicates a base64 decoding failure, either of the
	// payload segment or of a binary claim value inside it.
	KindEncoding Kind = "encoding"

	// KindPayload indicates the payload JSON is invalid or missing the
	// required sub claim.
	KindPayload Kind = "payload"

	// KindUUIDLength indicates a binary claim is not exactly 16 bytes.
	KindUUIDLength Kind = "uuid_length"
)

// MalformedTokenError reports a token that could not be decoded.
//
// Every decode failure is a MalformedTokenError; Kind carries the
// failure category and Details the specific circumstance. The error
// always reflects bad input, never an environmental fault, so callers
// should not retry.
type MalformedTokenError struct {
	Kind    Kind   // Failure category
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *MalformedTokenError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *MalformedTokenError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison by kind.
func (e *MalformedTokenError) Is(target error) bool {
	t, ok := target.(*MalformedTokenError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewMalformedTokenError creates a new MalformedTokenError with the given
// kind and message.
func NewMalformedTokenError(kind Kind, message string) *MalformedTokenError {
	return &MalformedTokenError{
		Kind:    kind,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *MalformedTokenError) WithDetails(details string) *MalformedTokenError {
	return &MalformedTokenError{
		Kind:    e.Kind,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *MalformedTokenError) WithCause(cause error) *MalformedTokenError {
	return &MalformedTokenError{
		Kind:    e.Kind,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsMalformed checks if an error is a MalformedTokenError with the given kind.
// If kind is empty, it only checks if the error is a MalformedTokenError.
func IsMalformed(err error, kind Kind) bool {
	var me *MalformedTokenError
	if errors.As(err, &me) {
		if kind == "" {
			return true // Only check if it's a MalformedTokenError
		}
		return me.Kind == kind
	}
	return false
}

// KindOf extracts the failure kind from an error if it's a MalformedTokenError.
func KindOf(err error) Kind {
	var me *MalformedTokenError
	if errors.As(err, &me) {
		return me.Kind
	}
	return ""
}

var (
	// ErrSegmentCount indicates the token does not split into exactly
	// three dot-separated segments.
	ErrSegmentCount = NewMalformedTokenError(KindStructure, "expected 3 dot-separated segments")

	// ErrPayloadEncoding indicates the payload segment or a binary claim
	// is not valid standard-alphabet base64.
	ErrPayloadEncoding = NewMalformedTokenError(KindEncoding, "invalid base64 encoding")

	// ErrPayloadInvalid indicates the payload is not the expected JSON
	// object or lacks the required sub claim.
	ErrPayloadInvalid = NewMalformedTokenError(KindPayload, "cannot parse payload")

	// ErrUUIDLength indicates a binary claim cannot form a UUID because
	// it is not exactly 16 bytes.
	ErrUUIDLength = NewMalformedTokenError(KindUUIDLength, "cannot decode uuid")
)
