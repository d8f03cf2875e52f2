package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// PostService manages posts and their paged listing.
type PostService interface {
	// Create stores a new post. The category must exist.
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)

	// GetAll returns one page of posts, each with its comments.
	GetAll(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.Post], error)

	// GetByID returns a post with its comments.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// Update overwrites every field of the post with the given id.
	Update(ctx context.Context, id int64, post *domain.Post) (*domain.Post, error)

	// Delete removes the post and all of its comments.
	Delete(ctx context.Context, id int64) error

	// GetAllByCategory lists every post in a category in id order.
	GetAllByCategory(ctx context.Context, categoryID int64) ([]domain.Post, error)
}

type postServiceImpl struct {
	db          *sql.DB
	posts       store.PostStore
	categories  store.CategoryStore
	comments    store.CommentStore
	maxPageSize int
	logger      *slog.Logger
}

// NewPostService creates a PostService. pagination.MaxPageSize caps page sizes when positive.
func NewPostService(
	db *sql.DB,
	posts store.PostStore,
	categories store.CategoryStore,
	comments store.CommentStore,
	pagination config.PaginationConfig,
	logger *slog.Logger,
) (PostService, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if posts == nil || categories == nil || comments == nil {
		return nil, fmt.Errorf("stores cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &postServiceImpl{
		db:          db,
		posts:       posts,
		categories:  categories,
		comments:    comments,
		maxPageSize: pagination.MaxPageSize,
		logger:      logger.With(slog.String("component", "post_service")),
	}, nil
}

// Create implements PostService.Create
func (s *postServiceImpl) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.categories.GetByID(ctx, post.CategoryID); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("post create references missing category", slog.Int64("category_id", post.CategoryID))
			return nil, err
		}
		return nil, wrapError("create post", err)
	}

	post.ID = 0
	if err := s.posts.Create(ctx, post); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, wrapError("create post", err)
	}
	post.Comments = []domain.Comment{}

	return post, nil
}

// GetAll implements PostService.GetAll
func (s *postServiceImpl) GetAll(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.Post], error) {
	if err := req.Validate(domain.PostSortFields, s.maxPageSize); err != nil {
		return nil, err
	}

	posts, total, err := s.posts.List(ctx, req)
	if err != nil {
		return nil, wrapError("list posts", err)
	}
	if err := s.attachComments(ctx, posts); err != nil {
		return nil, err
	}

	page := domain.NewPage(posts, req, total)
	return &page, nil
}

// GetByID implements PostService.GetByID
func (s *postServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, wrapError("get post", err)
	}

	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return nil, wrapError("get post comments", err)
	}
	post.Comments = comments

	return post, nil
}

// Update implements PostService.Update
func (s *postServiceImpl) Update(ctx context.Context, id int64, post *domain.Post) (*domain.Post, error) {
	if err := post.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, wrapError("update post", err)
	}
	if _, err := s.categories.GetByID(ctx, post.CategoryID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, wrapError("update post", err)
	}

	existing.Title = post.Title
	existing.Description = post.Description
	existing.Content = post.Content
	existing.CategoryID = post.CategoryID

	if err := s.posts.Update(ctx, existing); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, wrapError("update post", err)
	}

	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return nil, wrapError("update post", err)
	}
	existing.Comments = comments

	logger.FromContextOrDefault(ctx, s.logger).Info("post updated", slog.Int64("post_id", id))
	return existing, nil
}

// Delete implements PostService.Delete.
// Comments are removed explicitly in the same transaction; the schema cascade
// is a second line for rows written outside the service.
func (s *postServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var removed int64
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.posts.WithTx(tx).GetByID(ctx, id); err != nil {
			return err
		}

		n, err := s.comments.WithTx(tx).DeleteByPost(ctx, id)
		if err != nil {
			return err
		}
		removed = n

		return s.posts.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		return wrapError("delete post", err)
	}

	log.Info("post deleted",
		slog.Int64("post_id", id),
		slog.Int64("comments_removed", removed))
	return nil
}

// GetAllByCategory implements PostService.GetAllByCategory
func (s *postServiceImpl) GetAllByCategory(ctx context.Context, categoryID int64) ([]domain.Post, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, wrapError("list posts by category", err)
	}

	posts, err := s.posts.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, wrapError("list posts by category", err)
	}
	if err := s.attachComments(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// attachComments loads the comments of every post with a single query.
func (s *postServiceImpl) attachComments(ctx context.Context, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]int64, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}

	byPost, err := s.comments.ListByPosts(ctx, ids)
	if err != nil {
		return wrapError("load comments", err)
	}

	for i := range posts {
		comments := byPost[posts[i].ID]
		if comments == nil {
			comments = []domain.Comment{}
		}
		posts[i].Comments = comments
	}
	return nil
}
