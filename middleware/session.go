package middleware

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/audioskills/skillboard/auth"
	"github.com/audioskills/skillboard/models"
)

// sessionResolverKey is where the per-request resolver lives in the gin
// context. Unexported so handlers go through ResolveSession.
const sessionResolverKey = "skillboard_session_resolver"

// ResolvedSession is the identity/profile resolution result for one
// request. Either field may be nil: no identity means unauthenticated, an
// identity without a profile means authenticated but unprovisioned.
type ResolvedSession struct {
	Identity *auth.Identity
	Profile  *models.Profile
}

// ProfileStore is the read side of the profile table the resolver needs.
// models.Database satisfies it.
type ProfileStore interface {
	GetProfileByExternalId(externalId string) (*models.Profile, error)
}

// SessionResolver performs the identity and profile lookups for one request
// and caches the result for that request's lifetime. Every request gets its
// own resolver, so nothing is shared across requests.
type SessionResolver struct {
	Identity auth.Provider
	Profiles ProfileStore

	once    sync.Once
	session *ResolvedSession
}

// Resolve runs the resolution sequence at most once. The identity lookup
// always precedes the profile lookup, and the profile lookup is skipped when
// no identity is present. A failed profile read degrades to an absent
// profile rather than an error; the gate fails closed on it.
func (r *SessionResolver) Resolve(req *http.Request) *ResolvedSession {
	r.once.Do(func() {
		session := &ResolvedSession{}
		session.Identity = r.Identity.CurrentUser(req)
		if session.Identity == nil {
			r.session = session
			return
		}
		profile, err := r.Profiles.GetProfileByExternalId(session.Identity.ID)
		if err != nil {
			slog.Warn("profile lookup failed, treating identity as unprovisioned",
				"identityId", session.Identity.ID, "error", err)
		}
		session.Profile = profile
		r.session = session
	})
	return r.session
}

// SessionMiddleware attaches a fresh resolver to every request. Must run
// before any RouteGate.
func SessionMiddleware(provider auth.Provider, profiles ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionResolverKey, &SessionResolver{Identity: provider, Profiles: profiles})
		c.Next()
	}
}

// ResolveSession returns the request's memoized session, resolving on first
// use. A request that never went through SessionMiddleware resolves to an
// empty session, which every gate denies.
func ResolveSession(c *gin.Context) *ResolvedSession {
	value, exists := c.Get(sessionResolverKey)
	if !exists {
		return &ResolvedSession{}
	}
	resolver, ok := value.(*SessionResolver)
	if !ok {
		return &ResolvedSession{}
	}
	return resolver.Resolve(c.Request)
}
