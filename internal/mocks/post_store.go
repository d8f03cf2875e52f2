package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// MockPostStore implements store.PostStore with function fields.
type MockPostStore struct {
	CreateFn         func(ctx context.Context, post *domain.Post) error
	GetByIDFn        func(ctx context.Context, id int64) (*domain.Post, error)
	ListFn           func(ctx context.Context, req domain.PageRequest) ([]domain.Post, int64, error)
	ListByCategoryFn func(ctx context.Context, categoryID int64) ([]domain.Post, error)
	UpdateFn         func(ctx context.Context, post *domain.Post) error
	DeleteFn         func(ctx context.Context, id int64) error

	mu          sync.Mutex
	DeleteCalls []int64
}

var _ store.PostStore = (*MockPostStore)(nil)

// Create implements store.PostStore.Create
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}
	return nil
}

// GetByID implements store.PostStore.GetByID
func (m *MockPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrPostNotFound
}

// List implements store.PostStore.List
func (m *MockPostStore) List(ctx context.Context, req domain.PageRequest) ([]domain.Post, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, req)
	}
	return []domain.Post{}, 0, nil
}

// ListByCategory implements store.PostStore.ListByCategory
func (m *MockPostStore) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Post, error) {
	if m.ListByCategoryFn != nil {
		return m.ListByCategoryFn(ctx, categoryID)
	}
	return []domain.Post{}, nil
}

// Update implements store.PostStore.Update
func (m *MockPostStore) Update(ctx context.Context, post *domain.Post) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, post)
	}
	return nil
}

// Delete implements store.PostStore.Delete
func (m *MockPostStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// WithTx implements store.PostStore.WithTx
func (m *MockPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return m
}
