package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// CommentService manages the comments of a post. Every operation is addressed
// through the owning post.
type CommentService interface {
	Create(ctx context.Context, postID int64, comment *domain.Comment) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
	Get(ctx context.Context, postID, commentID int64) (*domain.Comment, error)
	Update(ctx context.Context, postID, commentID int64, comment *domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, postID, commentID int64) error
}

type commentServiceImpl struct {
	posts    store.PostStore
	comments store.CommentStore
	logger   *slog.Logger
}

// NewCommentService creates a CommentService.
func NewCommentService(posts store.PostStore, comments store.CommentStore, logger *slog.Logger) (CommentService, error) {
	if posts == nil || comments == nil {
		return nil, fmt.Errorf("stores cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &commentServiceImpl{
		posts:    posts,
		comments: comments,
		logger:   logger.With(slog.String("component", "comment_service")),
	}, nil
}

func (s *commentServiceImpl) requirePost(ctx context.Context, postID int64) error {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		return wrapError("get post", err)
	}
	return nil
}

// Create implements CommentService.Create
func (s *commentServiceImpl) Create(ctx context.Context, postID int64, comment *domain.Comment) (*domain.Comment, error) {
	if err := comment.Validate(); err != nil {
		return nil, err
	}
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	comment.ID = 0
	comment.PostID = postID
	if err := s.comments.Create(ctx, comment); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, wrapError("create comment", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("comment created",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("post_id", postID))
	return comment, nil
}

// ListByPost implements CommentService.ListByPost
func (s *commentServiceImpl) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, wrapError("list comments", err)
	}
	return comments, nil
}

// Get implements CommentService.Get
func (s *commentServiceImpl) Get(ctx context.Context, postID, commentID int64) (*domain.Comment, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, wrapError("get comment", err)
	}
	if comment.PostID != postID {
		logger.FromContextOrDefault(ctx, s.logger).Debug("comment addressed through wrong post",
			slog.Int64("comment_id", commentID),
			slog.Int64("post_id", postID),
			slog.Int64("owner_post_id", comment.PostID))
		return nil, ErrCommentNotInPost
	}
	return comment, nil
}

// Update implements CommentService.Update
func (s *commentServiceImpl) Update(
	ctx context.Context,
	postID, commentID int64,
	comment *domain.Comment,
) (*domain.Comment, error) {
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}

	existing.Name = comment.Name
	existing.Email = comment.Email
	existing.Body = comment.Body
	if err := s.comments.Update(ctx, existing); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, wrapError("update comment", err)
	}
	return existing, nil
}

// Delete implements CommentService.Delete
func (s *commentServiceImpl) Delete(ctx context.Context, postID, commentID int64) error {
	if _, err := s.Get(ctx, postID, commentID); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		return wrapError("delete comment", err)
	}
	return nil
}
