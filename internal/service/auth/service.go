package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// Service handles credential checks and account creation.
type Service interface {
	// Login authenticates by username or email and issues a token.
	Login(ctx context.Context, usernameOrEmail, password string) (*LoginResult, error)

	// Register creates a user holding only the default role.
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
}

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Identity  Identity
}

// RegisterRequest carries the fields of a new account.
type RegisterRequest struct {
	Name     string
	Email    string
	Username string
	Password string
}

// DefaultRole is assigned to every registered user.
const DefaultRole = domain.RoleUser

type authService struct {
	db     *sql.DB
	users  store.UserStore
	roles  *RoleCatalog
	hasher PasswordHasher
	tokens TokenService
	logger *slog.Logger
}

// NewService creates the authentication service.
func NewService(
	db *sql.DB,
	users store.UserStore,
	roles *RoleCatalog,
	hasher PasswordHasher,
	tokens TokenService,
	logger *slog.Logger,
) (Service, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if users == nil {
		return nil, fmt.Errorf("users cannot be nil")
	}
	if roles == nil {
		return nil, fmt.Errorf("roles cannot be nil")
	}
	if hasher == nil {
		return nil, fmt.Errorf("hasher cannot be nil")
	}
	if tokens == nil {
		return nil, fmt.Errorf("tokens cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &authService{
		db:     db,
		users:  users,
		roles:  roles,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With(slog.String("component", "auth_service")),
	}, nil
}

// Login implements Service.Login
func (s *authService) Login(ctx context.Context, usernameOrEmail, password string) (*LoginResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login attempt for unknown user")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login attempt with wrong password", slog.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	identity := Identity{
		UserID:   user.ID,
		Username: user.Username,
		Roles:    user.RoleNames(),
	}
	token, expiresAt, err := s.tokens.GenerateToken(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info("user logged in", slog.Int64("user_id", user.ID))
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Identity: identity}, nil
}

// Register implements Service.Register.
// The username check runs before the email check so a request clashing on
// both reports the username.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if req.Password == "" {
		return nil, domain.NewValidationError("password", "cannot be empty", nil)
	}
	if err := checkPasswordLength(req.Password); err != nil {
		return nil, err
	}

	role, ok := s.roles.Lookup(DefaultRole)
	if !ok {
		log.Error("default role missing from role catalog", slog.String("role", DefaultRole))
		return nil, fmt.Errorf("%w: %s", ErrDefaultRoleMissing, DefaultRole)
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(req.Name, req.Email, req.Username, hashed, role)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		users := s.users.WithTx(tx)

		exists, err := users.ExistsByUsername(ctx, user.Username)
		if err != nil {
			return err
		}
		if exists {
			return store.ErrUsernameExists
		}

		exists, err = users.ExistsByEmail(ctx, user.Email)
		if err != nil {
			return err
		}
		if exists {
			return store.ErrEmailExists
		}

		return users.Create(ctx, user)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("registration rejected", slog.String("reason", err.Error()))
			return nil, err
		}
		log.Error("failed to register user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))
	return user, nil
}
