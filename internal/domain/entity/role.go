package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin indicates full administrative access.
	RoleAdmin Role = "ADMIN"
	// RoleManager indicates elevated but non-administrative access.
	RoleManager Role = "MANAGER"
	// RoleUser indicates a regular user role.
	RoleUser Role = "USER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	default:
		return false
	}
}
