package entity

import "time"

// Session is the decoded identity of the current user of one client shell.
// It is derived from the backend's signed token and owned exclusively by the
// session store; no other component mutates it.
type Session struct {
	UserID    int64     // Primary key of the account on the backend.
	Username  string    // Display name carried in the token.
	Email     string    // Login identifier carried in the token.
	Role      Role      // Authorization level carried in the token.
	Token     string    // The opaque signed token, attached to authenticated requests verbatim.
	ExpiresAt time.Time // Token expiry; evaluated lazily at read time.
}

// Expired reports whether the session's token lifetime has passed at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
