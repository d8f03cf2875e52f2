package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// CategoryService manages post categories.
type CategoryService interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, id int64, category *domain.Category) (*domain.Category, error)

	// Delete fails with store.ErrCategoryInUse while posts reference the category.
	Delete(ctx context.Context, id int64) error
}

type categoryServiceImpl struct {
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(categories store.CategoryStore, logger *slog.Logger) (CategoryService, error) {
	if categories == nil {
		return nil, fmt.Errorf("categories cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &categoryServiceImpl{
		categories: categories,
		logger:     logger.With(slog.String("component", "category_service")),
	}, nil
}

// isExpected reports store errors the API maps to client errors.
func isExpected(err error) bool {
	return store.IsNotFoundError(err) ||
		store.IsDuplicateError(err) ||
		errors.Is(err, store.ErrInUse) ||
		errors.Is(err, domain.ErrValidation)
}

// Create implements CategoryService.Create
func (s *categoryServiceImpl) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	category.ID = 0
	if err := s.categories.Create(ctx, category); err != nil {
		if isExpected(err) {
			return nil, err
		}
		return nil, wrapError("create category", err)
	}
	return category, nil
}

// GetByID implements CategoryService.GetByID
func (s *categoryServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if isExpected(err) {
			return nil, err
		}
		return nil, wrapError("get category", err)
	}
	return category, nil
}

// List implements CategoryService.List
func (s *categoryServiceImpl) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, wrapError("list categories", err)
	}
	return categories, nil
}

// Update implements CategoryService.Update
func (s *categoryServiceImpl) Update(ctx context.Context, id int64, category *domain.Category) (*domain.Category, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	category.ID = id
	if err := s.categories.Update(ctx, category); err != nil {
		if isExpected(err) {
			return nil, err
		}
		return nil, wrapError("update category", err)
	}
	return category, nil
}

// Delete implements CategoryService.Delete
func (s *categoryServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if isExpected(err) {
			logger.FromContextOrDefault(ctx, s.logger).Debug("category delete rejected",
				slog.Int64("category_id", id),
				slog.String("reason", err.Error()))
			return err
		}
		return wrapError("delete category", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("category deleted", slog.Int64("category_id", id))
	return nil
}
