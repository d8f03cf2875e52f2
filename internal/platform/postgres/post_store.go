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

// postSortColumns maps sortable post fields to their columns.
var postSortColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"description": "description",
	"content":     "content",
}

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the PostStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// WithTx implements store.PostStore.WithTx
func (s *PostgresPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostgresPostStore{db: tx, logger: s.logger}
}

// Create implements store.PostStore.Create
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO posts (title, description, content, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		post.Title,
		post.Description,
		post.Content,
		post.CategoryID,
	).Scan(&post.ID)
	if err != nil {
		if IsForeignKeyViolation(err) && constraintName(err) == constraintPostsCategoryFK {
			log.Debug("post references missing category", slog.Int64("category_id", post.CategoryID))
			return fmt.Errorf("%w: id %d", store.ErrCategoryNotFound, post.CategoryID)
		}
		log.Error("failed to create post", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("post created successfully",
		slog.Int64("post_id", post.ID),
		slog.Int64("category_id", post.CategoryID))
	return nil
}

// GetByID implements store.PostStore.GetByID
func (s *PostgresPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, content, category_id
		FROM posts
		WHERE id = $1
	`
	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Description,
		&post.Content,
		&post.CategoryID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.Int64("post_id", id))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post", slog.String("error", err.Error()), slog.Int64("post_id", id))
		return nil, MapError(err)
	}

	return &post, nil
}

// List implements store.PostStore.List.
// Ordering always ends with id so pages are stable across requests.
func (s *PostgresPostStore) List(ctx context.Context, req domain.PageRequest) ([]domain.Post, int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	column, ok := postSortColumns[req.SortBy]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", domain.ErrInvalidSortField, req.SortBy)
	}
	direction := "DESC"
	if req.SortDir == domain.SortAsc {
		direction = "ASC"
	}
	orderBy := column + " " + direction
	if column != "id" {
		orderBy += ", id " + direction
	}

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		log.Error("failed to count posts", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	query := `
		SELECT id, title, description, content, category_id
		FROM posts
		ORDER BY ` + orderBy + `
		LIMIT $1 OFFSET $2
	`
	posts, err := s.query(ctx, query, req.PageSize, req.Offset())
	if err != nil {
		log.Error("failed to list posts",
			slog.String("error", err.Error()),
			slog.Int("page_no", req.PageNo),
			slog.Int("page_size", req.PageSize))
		return nil, 0, err
	}

	log.Debug("listed posts",
		slog.Int("page_no", req.PageNo),
		slog.Int("returned", len(posts)),
		slog.Int64("total", total))
	return posts, total, nil
}

// ListByCategory implements store.PostStore.ListByCategory
func (s *PostgresPostStore) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Post, error) {
	query := `
		SELECT id, title, description, content, category_id
		FROM posts
		WHERE category_id = $1
		ORDER BY id
	`
	posts, err := s.query(ctx, query, categoryID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list posts by category",
			slog.String("error", err.Error()),
			slog.Int64("category_id", categoryID))
		return nil, err
	}
	return posts, nil
}

func (s *PostgresPostStore) query(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Content, &p.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return posts, nil
}

// Update implements store.PostStore.Update
func (s *PostgresPostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE posts
		SET title = $1, description = $2, content = $3, category_id = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(ctx, query,
		post.Title,
		post.Description,
		post.Content,
		post.CategoryID,
		post.ID,
	)
	if err != nil {
		if IsForeignKeyViolation(err) && constraintName(err) == constraintPostsCategoryFK {
			return fmt.Errorf("%w: id %d", store.ErrCategoryNotFound, post.CategoryID)
		}
		log.Error("failed to update post", slog.String("error", err.Error()), slog.Int64("post_id", post.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrPostNotFound); err != nil {
		return err
	}

	log.Info("post updated successfully", slog.Int64("post_id", post.ID))
	return nil
}

// Delete implements store.PostStore.Delete
func (s *PostgresPostStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete post", slog.String("error", err.Error()), slog.Int64("post_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrPostNotFound); err != nil {
		return err
	}

	log.Info("post deleted successfully", slog.Int64("post_id", id))
	return nil
}
