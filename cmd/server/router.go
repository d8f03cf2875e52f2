package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/phrazzld/blog-api/internal/api"
	apiMiddleware "github.com/phrazzld/blog-api/internal/api/middleware"
	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service"
	"github.com/phrazzld/blog-api/internal/service/auth"
)

// routerDeps is everything the HTTP layer needs from the application.
type routerDeps struct {
	logger     *slog.Logger
	tokens     auth.TokenService
	auth       auth.Service
	posts      service.PostService
	categories service.CategoryService
	comments   service.CommentService
	pagination config.PaginationConfig
	rateLimit  config.RateLimitConfig
}

// route declares one endpoint. role is empty for public routes; rateLimited
// routes share the per-IP authentication limiter.
type route struct {
	method      string
	pattern     string
	handler     http.HandlerFunc
	role        string
	rateLimited bool
}

// apiRoutes is the full endpoint table mounted under /api/v1.
func apiRoutes(deps routerDeps) []route {
	authHandler := api.NewAuthHandler(deps.auth, deps.logger)
	postHandler := api.NewPostHandler(deps.posts, deps.pagination, deps.logger)
	categoryHandler := api.NewCategoryHandler(deps.categories, deps.logger)
	commentHandler := api.NewCommentHandler(deps.comments, deps.logger)

	const admin = domain.RoleAdmin

	return []route{
		{method: http.MethodPost, pattern: "/auth/login", handler: authHandler.Login, rateLimited: true},
		{method: http.MethodPost, pattern: "/auth/register", handler: authHandler.Register, rateLimited: true},

		{method: http.MethodPost, pattern: "/posts/createPost", handler: postHandler.CreatePost, role: admin},
		{method: http.MethodGet, pattern: "/posts/getposts", handler: postHandler.GetPosts},
		{method: http.MethodGet, pattern: "/posts/getById/{id}", handler: postHandler.GetPost},
		{method: http.MethodPut, pattern: "/posts/update/{id}", handler: postHandler.UpdatePost, role: admin},
		{method: http.MethodDelete, pattern: "/posts/delete/{id}", handler: postHandler.DeletePost, role: admin},
		{method: http.MethodGet, pattern: "/posts/getAllPostByCategories/{id}", handler: postHandler.GetPostsByCategory},

		{method: http.MethodPost, pattern: "/categories", handler: categoryHandler.CreateCategory, role: admin},
		{method: http.MethodGet, pattern: "/categories", handler: categoryHandler.ListCategories},
		{method: http.MethodGet, pattern: "/categories/{id}", handler: categoryHandler.GetCategory},
		{method: http.MethodPut, pattern: "/categories/{id}", handler: categoryHandler.UpdateCategory, role: admin},
		{method: http.MethodDelete, pattern: "/categories/{id}", handler: categoryHandler.DeleteCategory, role: admin},

		{method: http.MethodPost, pattern: "/posts/{postId}/comments", handler: commentHandler.CreateComment},
		{method: http.MethodGet, pattern: "/posts/{postId}/comments", handler: commentHandler.ListComments},
		{method: http.MethodGet, pattern: "/posts/{postId}/comments/{id}", handler: commentHandler.GetComment},
		{method: http.MethodPut, pattern: "/posts/{postId}/comments/{id}", handler: commentHandler.UpdateComment},
		{method: http.MethodDelete, pattern: "/posts/{postId}/comments/{id}", handler: commentHandler.DeleteComment},
	}
}

// newRouter creates the chi router with the standard middleware stack and
// every route from apiRoutes. Gated routes are wrapped with Authenticate and
// RequireRole so an unauthorized request never reaches its handler.
func newRouter(deps routerDeps) http.Handler {
	if deps.logger == nil {
		deps.logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(deps.logger))

	authMiddleware := apiMiddleware.NewAuthMiddleware(deps.tokens)
	authLimiter := newAuthRateLimiter(deps.rateLimit)

	r.Route("/api/v1", func(r chi.Router) {
		for _, rt := range apiRoutes(deps) {
			var h http.Handler = rt.handler
			if rt.role != "" {
				h = authMiddleware.Authenticate(apiMiddleware.RequireRole(rt.role)(h))
			}
			if rt.rateLimited && authLimiter != nil {
				h = authLimiter(h)
			}
			r.Method(rt.method, rt.pattern, h)
		}
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			deps.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

// newAuthRateLimiter returns a per-IP limiter for the authentication routes,
// or nil when rate limiting is disabled.
func newAuthRateLimiter(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled || cfg.RequestsPerMinute <= 0 {
		return nil
	}

	return httprate.Limit(
		cfg.RequestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithError(w, r, http.StatusTooManyRequests, "Too many requests, try again later")
		}),
	)
}
