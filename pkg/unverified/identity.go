// Package unverified extracts identity claims from a JWT without signature verification.
package unverified

// Identity holds the identifiers a token asserted about its caller.
//
// The value is immutable once constructed. Nothing about it is verified:
// use it to label logs and diagnostics, never to grant access.
type Identity struct {
	userID     string
	sessionID  string
	hasSession bool
}

// NewIdentity creates an Identity carrying only a user id.
func NewIdentity(userID string) Identity {
	return Identity{userID: userID}
}

// NewIdentityWithSession creates an Identity carrying a user and a session id.
func NewIdentityWithSession(userID, sessionID string) Identity {
	return Identity{
		userID:     userID,
		sessionID:  sessionID,
		hasSession: true,
	}
}

// UserID returns the canonical UUID string of the sub claim.
func (id Identity) UserID() string {
	return id.userID
}

// SessionID returns the canonical UUID string of the sid claim.
// The second return is false when the token carried no session id;
// the string is never a stand-in empty value.
func (id Identity) SessionID() (string, bool) {
	if !id.hasSession {
		return "", false
	}
	return id.sessionID, true
}
