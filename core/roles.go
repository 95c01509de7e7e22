package core

// Role is the capability-determining role carried on a user account.
type Role string

// The valid roles. Only admins bypass ownership checks.
const (
	RoleStudent  Role = "student"
	RoleExternal Role = "external"
	RoleAdmin    Role = "admin"
)

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleStudent, RoleExternal, RoleAdmin:
		return Role(raw), nil
	default:
		return "", ErrInvalidRole
	}
}

// ParseSelfServiceRole validates a role that users may register themselves with.
// Admin accounts are only created by promotion, never by registration.
func ParseSelfServiceRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleStudent, RoleExternal:
		return Role(raw), nil
	default:
		return "", ErrInvalidRole
	}
}

// IsAdmin reports whether the role carries the admin capability.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Actor is the authenticated actor context supplied by the session layer.
// The core trusts it as already validated and performs no I/O to check it.
type Actor struct {
	ID       UserIDInt64
	Role     Role
	IsActive bool
}

// RequireAdmin fails with ErrForbidden unless the actor carries the admin capability.
func RequireAdmin(actor Actor) error {
	if !actor.Role.IsAdmin() {
		return ErrForbidden
	}

	return nil
}

// RequireSelfOrAdmin fails with ErrForbidden unless the actor is the owner
// of the resource or carries the admin capability.
func RequireSelfOrAdmin(actor Actor, ownerID UserIDInt64) error {
	if actor.ID == ownerID {
		return nil
	}

	return RequireAdmin(actor)
}
