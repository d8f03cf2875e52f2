package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// PostgresRoleStore reads the roles reference table.
type PostgresRoleStore struct {
	db store.DBTX
}

// NewPostgresRoleStore creates a RoleStore over db.
func NewPostgresRoleStore(db store.DBTX) *PostgresRoleStore {
	return &PostgresRoleStore{db: db}
}

var _ store.RoleStore = (*PostgresRoleStore)(nil)

// List implements store.RoleStore.List
func (s *PostgresRoleStore) List(ctx context.Context) ([]domain.Role, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, MapError(err)
	}
	defer rows.Close()

	roles := []domain.Role{}
	for rows.Next() {
		var r domain.Role
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return roles, nil
}

// GetByName implements store.RoleStore.GetByName
func (s *PostgresRoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	var r domain.Role
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM roles WHERE name = $1`, name).Scan(&r.ID, &r.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrRoleNotFound
		}
		return nil, MapError(err)
	}
	return &r, nil
}
