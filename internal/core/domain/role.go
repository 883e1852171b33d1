package domain

import "strings"

// Role is one of the fixed role names seeded at bootstrap. Roles are never
// created or deleted at runtime; authorization works on the caller's set.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// AllRoles lists the complete role vocabulary in seed order.
var AllRoles = []Role{RoleUser, RoleModerator, RoleAdmin}

// ParseRole maps a role name to its Role value. Matching is
// case-insensitive so stored names and client-sent names both resolve.
func ParseRole(name string) (Role, bool) {
	switch r := Role(strings.ToLower(name)); r {
	case RoleUser, RoleModerator, RoleAdmin:
		return r, true
	}
	return "", false
}

// Authority renders the prefixed authority string exposed on signin
// responses, e.g. "ROLE_MODERATOR".
func (r Role) Authority() string {
	return "ROLE_" + strings.ToUpper(string(r))
}

// Authorize reports whether the caller holds at least one of the required
// roles. It is side-effect-free; callers pass freshly loaded memberships so
// a revoked role stops granting access on the very next request.
func Authorize(callerRoles []Role, required ...Role) bool {
	for _, have := range callerRoles {
		for _, want := range required {
			if have == want {
				return true
			}
		}
	}
	return false
}
