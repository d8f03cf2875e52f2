package auth

import (
	"context"
	"fmt"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// RoleCatalog is the role reference table held in memory. It is read-only after construction.
type RoleCatalog struct {
	byName map[string]domain.Role
}

// NewRoleCatalog builds a catalog from roles.
func NewRoleCatalog(roles ...domain.Role) *RoleCatalog {
	byName := make(map[string]domain.Role, len(roles))
	for _, r := range roles {
		byName[r.Name] = r
	}
	return &RoleCatalog{byName: byName}
}

// LoadRoleCatalog reads every role from the store.
func LoadRoleCatalog(ctx context.Context, roles store.RoleStore) (*RoleCatalog, error) {
	all, err := roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	return NewRoleCatalog(all...), nil
}

// Lookup returns the role with the given name.
func (c *RoleCatalog) Lookup(name string) (domain.Role, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// Len returns the number of known roles.
func (c *RoleCatalog) Len() int {
	return len(c.byName)
}
