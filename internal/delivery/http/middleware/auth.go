package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "cisoevents/internal/delivery/http/helpers"
	"cisoevents/internal/domain"
)

type contextKey string

const usernameKey contextKey = "username"

// SetUsername returns a context with the admin username set. Used by the auth guard.
func SetUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// UsernameFromContext returns the authenticated admin username from the context, if present.
func UsernameFromContext(ctx context.Context) (string, bool) {
	u, ok := ctx.Value(usernameKey).(string)
	return u, ok
}

// RequireSession returns a wrapper that validates the Bearer token and checks
// that an admin session is live. A token from before a logout is rejected
// even if it has not expired. On failure it responds with 401 and does not
// call next; the login route itself must stay unguarded.
func RequireSession(verifier domain.TokenVerifier, sessions domain.AuthService, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			username, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			session := sessions.Current()
			if session == nil || session.Username != username {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "no active session")
				return
			}
			r = r.WithContext(SetUsername(r.Context(), username))
			next(w, r)
		}
	}
}
