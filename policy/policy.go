package policy

import "fmt"

// Role is the closed set of profile roles the application knows about.
// Anything outside this set has no capabilities anywhere.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleSkillMaster  Role = "SKILL_MASTER"
	RoleEvaluator    Role = "EVALUATOR"
	RoleCollaborator Role = "COLLABORATOR"
)

// Roles enumerates every member of the closed role set.
var Roles = []Role{RoleAdmin, RoleSkillMaster, RoleEvaluator, RoleCollaborator}

// RouteGroup names a protected subtree of the URL space.
type RouteGroup string

const (
	GroupAdmin       RouteGroup = "admin"
	GroupSkillMaster RouteGroup = "skill-master"
	GroupEvaluator   RouteGroup = "evaluator"
	GroupProtected   RouteGroup = "protected"
)

var RouteGroups = []RouteGroup{GroupAdmin, GroupSkillMaster, GroupEvaluator, GroupProtected}

const (
	// LoginPath is where unauthenticated (or unprovisioned) requests land.
	LoginPath = "/auth/login"
	// HomePath is where authenticated requests without the required
	// privilege land. It dispatches to the role's own subtree.
	HomePath = "/dashboard"
)

// accessTable is the single source of truth for route-group access. Every
// role must carry an explicit entry for every route group; Validate enforces
// that at startup. Broader roles get explicit per-group entries rather than
// inheritance so the whole table stays auditable.
var accessTable = map[Role]map[RouteGroup]bool{
	RoleAdmin: {
		GroupAdmin:       true,
		GroupSkillMaster: true,
		GroupEvaluator:   true,
		GroupProtected:   true,
	},
	RoleSkillMaster: {
		GroupAdmin:       false,
		GroupSkillMaster: true,
		GroupEvaluator:   true,
		GroupProtected:   true,
	},
	RoleEvaluator: {
		GroupAdmin:       false,
		GroupSkillMaster: false,
		GroupEvaluator:   true,
		GroupProtected:   true,
	},
	RoleCollaborator: {
		GroupAdmin:       false,
		GroupSkillMaster: false,
		GroupEvaluator:   false,
		GroupProtected:   true,
	},
}

var landingPaths = map[Role]string{
	RoleAdmin:        "/admin/profiles",
	RoleSkillMaster:  "/skill-master/job-profiles",
	RoleEvaluator:    "/evaluator/evaluations",
	RoleCollaborator: "/protected/home",
}

// CanAccess reports whether a role may enter a route group. Unknown roles
// and unknown groups are denied.
func CanAccess(role Role, group RouteGroup) bool {
	groups, ok := accessTable[role]
	if !ok {
		return false
	}
	return groups[group]
}

func CanAccessAdmin(role Role) bool {
	return CanAccess(role, GroupAdmin)
}

func CanAccessSkillMaster(role Role) bool {
	return CanAccess(role, GroupSkillMaster)
}

func CanAccessEvaluator(role Role) bool {
	return CanAccess(role, GroupEvaluator)
}

// IsKnown reports whether a role value belongs to the closed role set.
func IsKnown(role Role) bool {
	_, ok := accessTable[role]
	return ok
}

// DashboardPath returns the canonical landing path a role is sent to after
// generic authentication. Unknown roles are sent back to login.
func DashboardPath(role Role) string {
	path, ok := landingPaths[role]
	if !ok {
		return LoginPath
	}
	return path
}

// Validate checks that the access table and the landing-path table are total
// over the closed role set. A gap is a configuration error, not a runtime
// ambiguity; bootstrap refuses to start on one.
func Validate() error {
	for _, role := range Roles {
		groups, ok := accessTable[role]
		if !ok {
			return fmt.Errorf("access table has no entries for role %s", role)
		}
		for _, group := range RouteGroups {
			if _, ok := groups[group]; !ok {
				return fmt.Errorf("access table has no entry for role %s and group %s", role, group)
			}
		}
		if _, ok := landingPaths[role]; !ok {
			return fmt.Errorf("no landing path defined for role %s", role)
		}
	}
	return nil
}
