package model

import "strings"

// DefaultRoles is the closed set of billing-tier roles the assistant may
// place into a structured intent. The serve config can override it.
var DefaultRoles = []string{"National", "CMS", "RMS"}

// CanonicalRole matches name against roles case-insensitively and returns
// the canonical spelling, or ok=false if the role is not in the set.
func CanonicalRole(roles []string, name string) (string, bool) {
	for _, r := range roles {
		if strings.EqualFold(r, name) {
			return r, true
		}
	}
	return "", false
}
