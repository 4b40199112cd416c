// Package tokenfilter provides HTTP middleware that attaches unverified
// bearer token identities to requests for logging and diagnostics.
//
// Behavior:
//
//   - Requests without the configured header pass through untouched
//   - Decoded identities are attached to the request context along with a
//     logger carrying unverified_user_id and unverified_session_id attributes
//   - Malformed tokens are counted by failure kind and logged at warn level
//     with the token fingerprint, never the raw value
//   - The filter never rejects a request; downstream handlers decide
//
// Security:
//
//   - Token signatures are NOT verified before identities are extracted
//   - Attached identities are diagnostic only and MUST NOT be used for
//     authentication or authorization decisions
//   - Failure logs are rate limited to keep hostile traffic from flooding
//     log storage
package tokenfilter
