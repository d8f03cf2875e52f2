package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that is managed by the caller.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

var userUniqueConstraints = map[string]error{
	constraintUsersUsername: store.ErrUsernameExists,
	constraintUsersEmail:    store.ErrEmailExists,
}

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{db: tx, logger: s.logger}
}

// Create implements store.UserStore.Create.
// The user row and its role links are written with the store's DBTX; callers
// wanting atomicity pass a transaction through WithTx.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO users (name, username, email, password, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		user.Name,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		mapped := MapUniqueViolation(err, userUniqueConstraints)
		if store.IsDuplicateError(mapped) {
			log.Debug("duplicate user rejected by database", slog.String("username", user.Username))
		} else {
			log.Error("failed to insert user", slog.String("error", err.Error()))
		}
		return mapped
	}

	for _, role := range user.Roles {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO users_roles (user_id, role_id) VALUES ($1, $2)`,
			user.ID, role.ID,
		)
		if err != nil {
			log.Error("failed to link user role",
				slog.String("error", err.Error()),
				slog.Int64("user_id", user.ID),
				slog.String("role", role.Name))
			return MapError(err)
		}
	}

	log.Info("user created successfully",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))
	return nil
}

// GetByUsernameOrEmail implements store.UserStore.GetByUsernameOrEmail
func (s *PostgresUserStore) GetByUsernameOrEmail(ctx context.Context, login string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, username, email, password, created_at
		FROM users
		WHERE username = $1 OR email = $1
		ORDER BY id
		LIMIT 1
	`
	var user domain.User
	err := s.db.QueryRowContext(ctx, query, login).Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found by username or email")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	roles, err := s.rolesOf(ctx, user.ID)
	if err != nil {
		log.Error("failed to load user roles",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return nil, err
	}
	user.Roles = roles

	return &user, nil
}

func (s *PostgresUserStore) rolesOf(ctx context.Context, userID int64) ([]domain.Role, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.name
		FROM roles r
		JOIN users_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.id
	`, userID)
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
	return roles, rows.Err()
}

// ExistsByUsername implements store.UserStore.ExistsByUsername
func (s *PostgresUserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
}

// ExistsByEmail implements store.UserStore.ExistsByEmail
func (s *PostgresUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}

func (s *PostgresUserStore) exists(ctx context.Context, query string, arg string) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check user existence",
			slog.String("error", err.Error()))
		return false, MapError(err)
	}
	return exists, nil
}
