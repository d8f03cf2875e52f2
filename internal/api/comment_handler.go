package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/service"
)

// CommentHandler handles comment requests nested under a post.
type CommentHandler struct {
	comments service.CommentService
	logger   *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments service.CommentService, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CommentHandler")
	}
	return &CommentHandler{
		comments: comments,
		logger:   logger.With(slog.String("component", "comment_handler")),
	}
}

// pathIDs extracts postId and, when withComment is set, the comment id.
// It writes the error response itself and reports whether extraction succeeded.
func pathIDs(w http.ResponseWriter, r *http.Request, withComment bool) (postID, commentID int64, ok bool) {
	postID, err := getPathID(r, "postId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return 0, 0, false
	}
	if !withComment {
		return postID, 0, true
	}
	commentID, err = getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return 0, 0, false
	}
	return postID, commentID, true
}

// CreateComment handles POST /api/v1/posts/{postId}/comments.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, _, ok := pathIDs(w, r, false)
	if !ok {
		return
	}

	var req CommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	comment, err := h.comments.Create(r.Context(), postID, req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create comment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, commentToResponse(comment))
}

// ListComments handles GET /api/v1/posts/{postId}/comments.
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, _, ok := pathIDs(w, r, false)
	if !ok {
		return
	}

	comments, err := h.comments.ListByPost(r.Context(), postID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list comments")
		return
	}

	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, commentToResponse(&comments[i]))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// GetComment handles GET /api/v1/posts/{postId}/comments/{id}.
func (h *CommentHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	postID, commentID, ok := pathIDs(w, r, true)
	if !ok {
		return
	}

	comment, err := h.comments.Get(r.Context(), postID, commentID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get comment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, commentToResponse(comment))
}

// UpdateComment handles PUT /api/v1/posts/{postId}/comments/{id}.
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	postID, commentID, ok := pathIDs(w, r, true)
	if !ok {
		return
	}

	var req CommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	comment, err := h.comments.Update(r.Context(), postID, commentID, req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update comment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, commentToResponse(comment))
}

// DeleteComment handles DELETE /api/v1/posts/{postId}/comments/{id}.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	postID, commentID, ok := pathIDs(w, r, true)
	if !ok {
		return
	}

	if err := h.comments.Delete(r.Context(), postID, commentID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete comment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Comment deleted successfully"})
}
