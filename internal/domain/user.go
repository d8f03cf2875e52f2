package domain

import (
	"strings"
	"time"
)

// Role names. Roles are static reference data seeded by migration.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// Role is an authorization label attached to a user.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User represents a registered account.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	Roles          []Role    `json:"roles"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewUser creates a User ready to be persisted. The password must already be hashed.
func NewUser(name, email, username, hashedPassword string, roles ...Role) (*User, error) {
	user := &User{
		Name:           strings.TrimSpace(name),
		Email:          strings.TrimSpace(email),
		Username:       strings.TrimSpace(username),
		HashedPassword: hashedPassword,
		Roles:          roles,
		CreatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the user has every required field and at least one role.
func (u *User) Validate() error {
	switch {
	case u.Name == "":
		return NewValidationError("name", "cannot be empty", nil)
	case u.Email == "":
		return NewValidationError("email", "cannot be empty", nil)
	case !strings.Contains(u.Email, "@"):
		return NewValidationError("email", "has invalid format", nil)
	case u.Username == "":
		return NewValidationError("username", "cannot be empty", nil)
	case u.HashedPassword == "":
		return NewValidationError("password", "cannot be empty", nil)
	case len(u.Roles) == 0:
		return NewValidationError("roles", "must contain at least one role", nil)
	}
	return nil
}

// RoleNames returns the names of the user's roles in order.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
