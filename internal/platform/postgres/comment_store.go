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

// PostgresCommentStore implements the store.CommentStore interface.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the CommentStore interface.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

var _ store.CommentStore = (*PostgresCommentStore)(nil)

const commentColumns = `id, post_id, name, email, body`

// WithTx implements store.CommentStore.WithTx
func (s *PostgresCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return &PostgresCommentStore{db: tx, logger: s.logger}
}

// Create implements store.CommentStore.Create
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO comments (post_id, name, email, body) VALUES ($1, $2, $3, $4) RETURNING id`,
		comment.PostID, comment.Name, comment.Email, comment.Body,
	).Scan(&comment.ID)
	if err != nil {
		if IsForeignKeyViolation(err) && constraintName(err) == constraintCommentsPostFK {
			return fmt.Errorf("%w: id %d", store.ErrPostNotFound, comment.PostID)
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.Int64("post_id", comment.PostID))
		return MapError(err)
	}
	return nil
}

// GetByID implements store.CommentStore.GetByID
func (s *PostgresCommentStore) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var c domain.Comment
	err := s.db.QueryRowContext(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = $1`, id,
	).Scan(&c.ID, &c.PostID, &c.Name, &c.Email, &c.Body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCommentNotFound
		}
		return nil, MapError(err)
	}
	return &c, nil
}

// ListByPost implements store.CommentStore.ListByPost
func (s *PostgresCommentStore) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return s.query(ctx, `SELECT `+commentColumns+` FROM comments WHERE post_id = $1 ORDER BY id`, postID)
}

// ListByPosts implements store.CommentStore.ListByPosts.
func (s *PostgresCommentStore) ListByPosts(ctx context.Context, postIDs []int64) (map[int64][]domain.Comment, error) {
	byPost := make(map[int64][]domain.Comment, len(postIDs))
	if len(postIDs) == 0 {
		return byPost, nil
	}

	comments, err := s.query(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE post_id = ANY($1) ORDER BY id`,
		postIDs,
	)
	if err != nil {
		return nil, err
	}

	for _, c := range comments {
		byPost[c.PostID] = append(byPost[c.PostID], c)
	}
	return byPost, nil
}

func (s *PostgresCommentStore) query(ctx context.Context, query string, args ...any) ([]domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to query comments",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.Name, &c.Email, &c.Body); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return comments, nil
}

// Update implements store.CommentStore.Update
func (s *PostgresCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE comments SET name = $1, email = $2, body = $3 WHERE id = $4`,
		comment.Name, comment.Email, comment.Body, comment.ID,
	)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCommentNotFound)
}

// Delete implements store.CommentStore.Delete
func (s *PostgresCommentStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCommentNotFound)
}

// DeleteByPost implements store.CommentStore.DeleteByPost
func (s *PostgresCommentStore) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, postID)
	if err != nil {
		return 0, MapError(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
