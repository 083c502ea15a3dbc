package user

type Role string

const (
	RoleGuest     Role = "guest"
	RoleReception Role = "reception"
	RoleManager   Role = "manager"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleReception, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role belongs to hotel staff rather than a guest.
func (r Role) IsStaff() bool {
	switch r {
	case RoleReception, RoleManager, RoleAdmin:
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
