package identity

import "sort"

// DefaultRoleName is the canonical role assigned to newly registered users.
const DefaultRoleName = "ROLE_USER"

// RoleNames flattens a role set into its canonical names
func RoleNames(roles []*Role) []string {
	if len(roles) == 0 {
		return nil
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		if r == nil || r.Name == "" {
			continue
		}
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}

// HasRoleName reports whether the named role appears in the given set
func HasRoleName(names []string, role string) bool {
	for _, n := range names {
		if n == role {
			return true
		}
	}
	return false
}

// SameRoleSet compares two role-name lists as sets
func SameRoleSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, n := range a {
		seen[n]++
	}
	for _, n := range b {
		seen[n]--
		if seen[n] < 0 {
			return false
		}
	}
	return true
}
