package auth

import "net/http"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "skillboard_token"

// Identity is an authenticated user handle resolved from an incoming
// request. Only the external id is load bearing; the email travels along for
// logging.
type Identity struct {
	ID    string
	Email string
}

// Provider resolves the identity attached to an incoming request.
// Implementations must return nil for "no session" rather than an error;
// absence is a normal outcome, not a fault.
type Provider interface {
	CurrentUser(r *http.Request) *Identity
}
