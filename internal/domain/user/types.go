package user

import "strings"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// RoleFor grants admin to exactly one configured address; there is no role data on the backend.
func RoleFor(email, adminEmail string) Role {
	if adminEmail != "" && strings.EqualFold(strings.TrimSpace(email), strings.TrimSpace(adminEmail)) {
		return RoleAdmin
	}
	return RoleCustomer
}
