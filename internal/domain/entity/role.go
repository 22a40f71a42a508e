package entity

import "strings"

// Role is the backend role of a user account.
type Role string

const (
	// RoleAdmin manages the users of its company.
	RoleAdmin Role = "ADMIN"
	// RoleSupervisor oversees the operators of a shift.
	RoleSupervisor Role = "SUPERVISOR"
	// RoleOperator drives the forklifts and receives alerts.
	RoleOperator Role = "OPERATOR"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleOperator:
		return true
	default:
		return false
	}
}

// ParseRole normalizes s and reports whether it names a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))

	return r, r.IsValid()
}
