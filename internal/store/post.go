package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/blog-api/internal/domain"
)

// PostStore defines the interface for post persistence.
// Returned posts never carry comments; callers attach them through CommentStore.
type PostStore interface {
	// Create saves a new post and sets post.ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its ID. Returns ErrPostNotFound if absent.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// List returns one page of posts ordered as requested and the total number of posts.
	// The request must already be validated.
	List(ctx context.Context, req domain.PageRequest) ([]domain.Post, int64, error)

	// ListByCategory returns every post in the category ordered by id.
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Post, error)

	// Update overwrites title, description, content and category of an existing post.
	// Returns ErrPostNotFound or ErrCategoryNotFound.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post. Returns ErrPostNotFound if absent.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new PostStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) PostStore
}

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// Create saves a new category and sets category.ID.
	// Returns ErrCategoryExists when the name is taken.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category. Returns ErrCategoryNotFound if absent.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	// List returns every category ordered by id.
	List(ctx context.Context) ([]domain.Category, error)

	// Update overwrites name and description. Returns ErrCategoryNotFound or ErrCategoryExists.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category. Returns ErrCategoryNotFound, or ErrCategoryInUse
	// when posts still reference it.
	Delete(ctx context.Context, id int64) error
}

// CommentStore defines the interface for comment persistence.
type CommentStore interface {
	// Create saves a new comment and sets comment.ID.
	// Returns ErrPostNotFound if the post does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID retrieves a comment regardless of its post. Returns ErrCommentNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)

	// ListByPost returns the comments of one post ordered by id.
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)

	// ListByPosts returns the comments of several posts keyed by post id.
	ListByPosts(ctx context.Context, postIDs []int64) (map[int64][]domain.Comment, error)

	// Update overwrites name, email and body. Returns ErrCommentNotFound.
	Update(ctx context.Context, comment *domain.Comment) error

	// Delete removes a comment. Returns ErrCommentNotFound.
	Delete(ctx context.Context, id int64) error

	// DeleteByPost removes every comment of a post and reports how many were removed.
	DeleteByPost(ctx context.Context, postID int64) (int64, error)

	// WithTx returns a new CommentStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CommentStore
}
