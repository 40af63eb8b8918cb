package domain

import "time"

// Session is the live authenticated admin identity. At most one exists at a
// time; a nil session means anonymous.
// swagger:model Session
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated session.
type TokenIssuer interface {
	Issue(username, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated username.
type TokenVerifier interface {
	Verify(token string) (username string, err error)
}

// AuthService tracks the single admin session and gates admin-only routes.
type AuthService interface {
	// Login succeeds only on exact credential match. On success it
	// transitions to Authenticated and returns a bearer token; on failure
	// the session is untouched and ErrInvalidCredentials is returned.
	Login(username, password string) (token string, session *Session, err error)
	// Logout transitions to Anonymous unconditionally; idempotent.
	Logout()
	// Current returns the live session, or nil when anonymous.
	Current() *Session
}
