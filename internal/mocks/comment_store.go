package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// MockCommentStore implements store.CommentStore with function fields.
type MockCommentStore struct {
	CreateFn       func(ctx context.Context, comment *domain.Comment) error
	GetByIDFn      func(ctx context.Context, id int64) (*domain.Comment, error)
	ListByPostFn   func(ctx context.Context, postID int64) ([]domain.Comment, error)
	ListByPostsFn  func(ctx context.Context, postIDs []int64) (map[int64][]domain.Comment, error)
	UpdateFn       func(ctx context.Context, comment *domain.Comment) error
	DeleteFn       func(ctx context.Context, id int64) error
	DeleteByPostFn func(ctx context.Context, postID int64) (int64, error)

	mu               sync.Mutex
	ListByPostsCalls int
}

var _ store.CommentStore = (*MockCommentStore)(nil)

// Create implements store.CommentStore.Create
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}
	return nil
}

// GetByID implements store.CommentStore.GetByID
func (m *MockCommentStore) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrCommentNotFound
}

// ListByPost implements store.CommentStore.ListByPost
func (m *MockCommentStore) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	if m.ListByPostFn != nil {
		return m.ListByPostFn(ctx, postID)
	}
	return []domain.Comment{}, nil
}

// ListByPosts implements store.CommentStore.ListByPosts
func (m *MockCommentStore) ListByPosts(ctx context.Context, postIDs []int64) (map[int64][]domain.Comment, error) {
	m.mu.Lock()
	m.ListByPostsCalls++
	m.mu.Unlock()

	if m.ListByPostsFn != nil {
		return m.ListByPostsFn(ctx, postIDs)
	}
	return map[int64][]domain.Comment{}, nil
}

// Update implements store.CommentStore.Update
func (m *MockCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, comment)
	}
	return nil
}

// Delete implements store.CommentStore.Delete
func (m *MockCommentStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// DeleteByPost implements store.CommentStore.DeleteByPost
func (m *MockCommentStore) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	if m.DeleteByPostFn != nil {
		return m.DeleteByPostFn(ctx, postID)
	}
	return 0, nil
}

// WithTx implements store.CommentStore.WithTx
func (m *MockCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return m
}
