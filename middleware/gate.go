package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/audioskills/skillboard/policy"
)

const (
	ROLE_KEY       = "role"
	USER_NAME_KEY  = "user_name"
	USER_EMAIL_KEY = "user_email"
)

// GateState classifies the outcome of gating one request.
type GateState int

const (
	StateNoIdentity GateState = iota
	StateNoProfile
	StateUnauthorized
	StateAuthorized
)

func (s GateState) String() string {
	switch s {
	case StateNoIdentity:
		return "no_identity"
	case StateNoProfile:
		return "no_profile"
	case StateUnauthorized:
		return "unauthorized"
	case StateAuthorized:
		return "authorized"
	}
	return "unknown"
}

// Decision is the gate's verdict for one request: render, or redirect.
// Denial is a designed response, never an error.
type Decision struct {
	State      GateState
	RedirectTo string
}

// Evaluate applies the role policy to a resolved session for one route
// group. Pure; the boundary layer interprets the decision. An identity
// without a profile is treated as unauthenticated, so both go back to login;
// an authorized identity lacking the group's privilege goes to the generic
// authenticated landing path instead.
func Evaluate(session *ResolvedSession, group policy.RouteGroup) Decision {
	if session == nil || session.Identity == nil {
		return Decision{State: StateNoIdentity, RedirectTo: policy.LoginPath}
	}
	if session.Profile == nil {
		return Decision{State: StateNoProfile, RedirectTo: policy.LoginPath}
	}
	if !policy.CanAccess(policy.Role(session.Profile.Role), group) {
		// a profile that cannot even enter the generic protected area (an
		// unknown role value) must not bounce to the dashboard, which sits
		// inside that area; send it back to login instead
		if group == policy.GroupProtected {
			return Decision{State: StateUnauthorized, RedirectTo: policy.LoginPath}
		}
		return Decision{State: StateUnauthorized, RedirectTo: policy.HomePath}
	}
	return Decision{State: StateAuthorized}
}

// RouteGate protects one route group. On denial it redirects and aborts; on
// success it exposes the resolved role, display name and email to handlers
// so they never re-resolve.
func RouteGate(group policy.RouteGroup) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := ResolveSession(c)
		decision := Evaluate(session, group)
		if decision.State != StateAuthorized {
			slog.Debug("route gate denied request",
				"group", group, "state", decision.State.String(), "redirect", decision.RedirectTo)
			c.Redirect(http.StatusFound, decision.RedirectTo)
			c.Abort()
			return
		}

		profile := session.Profile
		c.Set(ROLE_KEY, policy.Role(profile.Role))
		c.Set(USER_NAME_KEY, profile.DisplayName())
		c.Set(USER_EMAIL_KEY, profile.Email)
		c.Next()
	}
}
