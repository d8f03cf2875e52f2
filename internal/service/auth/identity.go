package auth

import "slices"

// Identity is the authenticated principal carried by a token.
type Identity struct {
	UserID   int64
	Username string
	Roles    []string
}

// HasRole reports whether the identity holds role.
func (i Identity) HasRole(role string) bool {
	return slices.Contains(i.Roles, role)
}

// HasAnyRole reports whether the identity holds at least one of roles.
func (i Identity) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if i.HasRole(r) {
			return true
		}
	}
	return false
}
