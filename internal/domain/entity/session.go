package entity

// Role is the side of the marketplace a session acts on.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleRenter Role = "renter"
)

// RoleFor maps the upstream isOwner flag to a role.
func RoleFor(isOwner bool) Role {
	if isOwner {
		return RoleOwner
	}

	return RoleRenter
}

// Session is the identity of the caller. Use cases receive it explicitly
// instead of reading a process-wide store.
type Session struct {
	UserID int64
	Role   Role
}

// IsOwner reports whether the session acts as an owner.
func (s Session) IsOwner() bool {
	return s.Role == RoleOwner
}
