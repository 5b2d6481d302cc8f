package auth

import "github.com/harborops/harbormaster-go/internal/domain/shared"

// User is the acting principal for docking operations. Authentication and
// session handling live outside the core; handlers receive a resolved User.
type User struct {
	id   string
	name string
	role Role
}

// NewUser creates a user with a validated role
func NewUser(id, name string, role Role) (*User, error) {
	if id == "" {
		return nil, shared.NewValidationError("id", "user ID cannot be empty")
	}
	if !role.Valid() {
		return nil, shared.NewValidationError("role", "unknown role: "+string(role))
	}
	return &User{id: id, name: name, role: role}, nil
}

func (u *User) ID() string   { return u.id }
func (u *User) Name() string { return u.name }
func (u *User) Role() Role   { return u.role }

// Can reports whether this user holds the capability.
func (u *User) Can(c Capability) bool {
	return u.role.HasCapability(c)
}
