package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/service"
)

// PostHandler handles post-related HTTP requests.
type PostHandler struct {
	posts      service.PostService
	pagination config.PaginationConfig
	logger     *slog.Logger
}

// NewPostHandler creates a new PostHandler. pagination supplies the listing
// defaults for absent query parameters.
func NewPostHandler(
	posts service.PostService,
	pagination config.PaginationConfig,
	logger *slog.Logger,
) *PostHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PostHandler")
	}
	return &PostHandler{
		posts:      posts,
		pagination: pagination,
		logger:     logger.With(slog.String("component", "post_handler")),
	}
}

// CreatePost handles POST /api/v1/posts/createPost.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	post, err := h.posts.Create(r.Context(), req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create post")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("post created", slog.Int64("post_id", post.ID))

	shared.RespondWithJSON(w, r, http.StatusCreated, postToResponse(post))
}

// GetPosts handles GET /api/v1/posts/getposts.
func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	pageReq, err := parsePageRequest(r, h.pagination)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.posts.GetAll(r.Context(), pageReq)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list posts")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postPageToResponse(page))
}

// GetPost handles GET /api/v1/posts/getById/{id}.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	post, err := h.posts.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// UpdatePost handles PUT /api/v1/posts/update/{id}.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req PostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	post, err := h.posts.Update(r.Context(), id, req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// DeletePost handles DELETE /api/v1/posts/delete/{id}.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.posts.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete post")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("post deleted", slog.Int64("post_id", id))

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Post deleted successfully"})
}

// GetPostsByCategory handles GET /api/v1/posts/getAllPostByCategories/{id}.
func (h *PostHandler) GetPostsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	posts, err := h.posts.GetAllByCategory(r.Context(), categoryID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list posts")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postsToResponse(posts))
}
