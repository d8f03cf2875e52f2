package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service"
	"github.com/phrazzld/blog-api/internal/service/auth"
)

// MockAuthService implements auth.Service.
type MockAuthService struct {
	LoginFn    func(ctx context.Context, usernameOrEmail, password string) (*auth.LoginResult, error)
	RegisterFn func(ctx context.Context, req auth.RegisterRequest) (*domain.User, error)
}

var _ auth.Service = (*MockAuthService)(nil)

// Login implements auth.Service.Login
func (m *MockAuthService) Login(ctx context.Context, usernameOrEmail, password string) (*auth.LoginResult, error) {
	return m.LoginFn(ctx, usernameOrEmail, password)
}

// Register implements auth.Service.Register
func (m *MockAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*domain.User, error) {
	return m.RegisterFn(ctx, req)
}

// MockPostService implements service.PostService and counts calls so tests can
// assert a handler was never reached.
type MockPostService struct {
	CreateFn           func(ctx context.Context, post *domain.Post) (*domain.Post, error)
	GetAllFn           func(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.Post], error)
	GetByIDFn          func(ctx context.Context, id int64) (*domain.Post, error)
	UpdateFn           func(ctx context.Context, id int64, post *domain.Post) (*domain.Post, error)
	DeleteFn           func(ctx context.Context, id int64) error
	GetAllByCategoryFn func(ctx context.Context, categoryID int64) ([]domain.Post, error)

	mu    sync.Mutex
	calls int
}

var _ service.PostService = (*MockPostService)(nil)

func (m *MockPostService) record() {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
}

// Calls returns how many service methods were invoked.
func (m *MockPostService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Create implements service.PostService.Create
func (m *MockPostService) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	m.record()
	return m.CreateFn(ctx, post)
}

// GetAll implements service.PostService.GetAll
func (m *MockPostService) GetAll(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.Post], error) {
	m.record()
	return m.GetAllFn(ctx, req)
}

// GetByID implements service.PostService.GetByID
func (m *MockPostService) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	m.record()
	return m.GetByIDFn(ctx, id)
}

// Update implements service.PostService.Update
func (m *MockPostService) Update(ctx context.Context, id int64, post *domain.Post) (*domain.Post, error) {
	m.record()
	return m.UpdateFn(ctx, id, post)
}

// Delete implements service.PostService.Delete
func (m *MockPostService) Delete(ctx context.Context, id int64) error {
	m.record()
	return m.DeleteFn(ctx, id)
}

// GetAllByCategory implements service.PostService.GetAllByCategory
func (m *MockPostService) GetAllByCategory(ctx context.Context, categoryID int64) ([]domain.Post, error) {
	m.record()
	return m.GetAllByCategoryFn(ctx, categoryID)
}

// MockCategoryService implements service.CategoryService.
type MockCategoryService struct {
	CreateFn  func(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Category, error)
	ListFn    func(ctx context.Context) ([]domain.Category, error)
	UpdateFn  func(ctx context.Context, id int64, category *domain.Category) (*domain.Category, error)
	DeleteFn  func(ctx context.Context, id int64) error
}

var _ service.CategoryService = (*MockCategoryService)(nil)

// Create implements service.CategoryService.Create
func (m *MockCategoryService) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	return m.CreateFn(ctx, category)
}

// GetByID implements service.CategoryService.GetByID
func (m *MockCategoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return m.GetByIDFn(ctx, id)
}

// List implements service.CategoryService.List
func (m *MockCategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return m.ListFn(ctx)
}

// Update implements service.CategoryService.Update
func (m *MockCategoryService) Update(ctx context.Context, id int64, category *domain.Category) (*domain.Category, error) {
	return m.UpdateFn(ctx, id, category)
}

// Delete implements service.CategoryService.Delete
func (m *MockCategoryService) Delete(ctx context.Context, id int64) error {
	return m.DeleteFn(ctx, id)
}

// MockCommentService implements service.CommentService.
type MockCommentService struct {
	CreateFn     func(ctx context.Context, postID int64, comment *domain.Comment) (*domain.Comment, error)
	ListByPostFn func(ctx context.Context, postID int64) ([]domain.Comment, error)
	GetFn        func(ctx context.Context, postID, commentID int64) (*domain.Comment, error)
	UpdateFn     func(ctx context.Context, postID, commentID int64, comment *domain.Comment) (*domain.Comment, error)
	DeleteFn     func(ctx context.Context, postID, commentID int64) error
}

var _ service.CommentService = (*MockCommentService)(nil)

// Create implements service.CommentService.Create
func (m *MockCommentService) Create(ctx context.Context, postID int64, comment *domain.Comment) (*domain.Comment, error) {
	return m.CreateFn(ctx, postID, comment)
}

// ListByPost implements service.CommentService.ListByPost
func (m *MockCommentService) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return m.ListByPostFn(ctx, postID)
}

// Get implements service.CommentService.Get
func (m *MockCommentService) Get(ctx context.Context, postID, commentID int64) (*domain.Comment, error) {
	return m.GetFn(ctx, postID, commentID)
}

// Update implements service.CommentService.Update
func (m *MockCommentService) Update(
	ctx context.Context,
	postID, commentID int64,
	comment *domain.Comment,
) (*domain.Comment, error) {
	return m.UpdateFn(ctx, postID, commentID, comment)
}

// Delete implements service.CommentService.Delete
func (m *MockCommentService) Delete(ctx context.Context, postID, commentID int64) error {
	return m.DeleteFn(ctx, postID, commentID)
}
