package models

import "time"

// Session is the server-persisted proof of authentication bound to a user.
//
// The Token doubles as the primary key of the session row and as the opaque
// bearer value transported to the client in the session cookie. It must be
// high-entropy and never reused across distinct sessions.
type Session struct {
	// Token is the opaque high-entropy session identifier.
	Token string `json:"-"`

	// UserID references the owning user. Sessions are deleted when the
	// user is deleted (cascade), explicitly invalidated, or expired.
	UserID string `json:"user_id"`

	// ExpiresAt is the absolute expiry timestamp. An expired session is
	// equivalent to an absent one and must be purged on sight.
	ExpiresAt time.Time `json:"expires_at"`

	// Fresh marks a session whose expiry was just extended during
	// validation. It is a runtime-only signal telling the transport layer
	// to re-issue the cookie; it is never persisted.
	Fresh bool `json:"-"`
}

// Expired reports whether the session's expiry lies at or before now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Principal is the resolved (user, session) pair produced by a successful
// authentication. Handlers read it from the request context.
type Principal struct {
	User    User
	Session Session
}
