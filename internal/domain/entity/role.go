// Package entity contains the core business objects of the project.
package entity

// Role represents the authorization level attached to a session.
type Role string

const (
	// RoleGuest indicates an anonymous visitor with no session.
	RoleGuest Role = "guest"
	// RoleCustomer is the wire value the backend issues for regular accounts.
	RoleCustomer Role = "korisnik"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString maps a decoded token role claim to a Role.
// Unknown claims degrade to guest rather than failing the whole session.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleGuest
	}

	return role
}
