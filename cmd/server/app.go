package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/postgres"
	"github.com/phrazzld/blog-api/internal/service"
	"github.com/phrazzld/blog-api/internal/service/auth"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	tokens     auth.TokenService
	auth       auth.Service
	posts      service.PostService
	categories service.CategoryService
	comments   service.CommentService
}

// newApplication wires stores, services and the role catalog on top of an
// established database connection.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.tokens, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("token service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	userStore := postgres.NewPostgresUserStore(db, logger)
	roleStore := postgres.NewPostgresRoleStore(db)
	postStore := postgres.NewPostgresPostStore(db, logger)
	categoryStore := postgres.NewPostgresCategoryStore(db, logger)
	commentStore := postgres.NewPostgresCommentStore(db, logger)

	// Roles are static reference data; load them once.
	roles, err := auth.LoadRoleCatalog(ctx, roleStore)
	if err != nil {
		return nil, err
	}
	logger.Info("role catalog loaded", "roles", roles.Len())

	app.auth, err = auth.NewService(db, userStore, roles,
		auth.NewBcryptHasher(cfg.Auth.BcryptCost), app.tokens, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	app.posts, err = service.NewPostService(db, postStore, categoryStore, commentStore, cfg.Pagination, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}

	app.categories, err = service.NewCategoryService(categoryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}

	app.comments, err = service.NewCommentService(postStore, commentStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := newRouter(routerDeps{
		logger:     app.logger,
		tokens:     app.tokens,
		auth:       app.auth,
		posts:      app.posts,
		categories: app.categories,
		comments:   app.comments,
		pagination: app.config.Pagination,
		rateLimit:  app.config.RateLimit,
	})

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
