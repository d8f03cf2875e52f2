package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/blog-api/internal/domain"
)

// UserStore defines the interface for user credential persistence.
type UserStore interface {
	// Create saves a new user together with its role links and sets user.ID.
	// Returns ErrUsernameExists or ErrEmailExists on a unique violation.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsernameOrEmail retrieves a user whose username or email equals login,
	// including its roles. Returns ErrUserNotFound if no user matches.
	GetByUsernameOrEmail(ctx context.Context, login string) (*domain.User, error)

	// ExistsByUsername reports whether a user with the username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether a user with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// WithTx returns a new UserStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}

// RoleStore reads the static role reference table.
type RoleStore interface {
	// List returns every role ordered by id.
	List(ctx context.Context) ([]domain.Role, error)

	// GetByName returns the role with the given name, or ErrRoleNotFound.
	GetByName(ctx context.Context, name string) (*domain.Role, error)
}
