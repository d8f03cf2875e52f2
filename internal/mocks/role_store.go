package mocks

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// MockRoleStore serves a fixed role list.
type MockRoleStore struct {
	Roles []domain.Role
	Err   error
}

var _ store.RoleStore = (*MockRoleStore)(nil)

// NewMockRoleStore returns a store holding the two seeded roles.
func NewMockRoleStore() *MockRoleStore {
	return &MockRoleStore{Roles: []domain.Role{
		{ID: 1, Name: domain.RoleAdmin},
		{ID: 2, Name: domain.RoleUser},
	}}
}

// List implements store.RoleStore.List
func (m *MockRoleStore) List(ctx context.Context) ([]domain.Role, error) {
	return m.Roles, m.Err
}

// GetByName implements store.RoleStore.GetByName
func (m *MockRoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, r := range m.Roles {
		if r.Name == name {
			return &r, nil
		}
	}
	return nil, store.ErrRoleNotFound
}
