// Package rbac is the role gate for note mutations. It is pure on
// purpose: deciding whether a role may write is separate from how the
// role was established (see pkg/auth) and from what a denial looks like
// on the wire.
package rbac

import "strings"

// Allowed reports whether role is a member of the allowed set.
func Allowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// DenialMessage renders the roles that would have been sufficient, so a
// denied caller knows what to ask for.
func DenialMessage(allowed []string) string {
	return "Insufficient permissions. Required role: " + strings.Join(allowed, " or ")
}
