package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/mocks"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCategoryHandler(t *testing.T, svc *mocks.MockCategoryService) *CategoryHandler {
	t.Helper()
	_, log, _ := logger.NewTestLogger(t)
	return NewCategoryHandler(svc, log)
}

func TestCreateCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]any
		createErr  error
		wantStatus int
	}{
		{name: "created", payload: map[string]any{"name": "Go", "description": "Gophers"}, wantStatus: http.StatusCreated},
		{name: "missing name", payload: map[string]any{"description": "Gophers"}, wantStatus: http.StatusBadRequest},
		{
			name:       "duplicate name",
			payload:    map[string]any{"name": "Go"},
			createErr:  store.ErrCategoryExists,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.MockCategoryService{
				CreateFn: func(_ context.Context, c *domain.Category) (*domain.Category, error) {
					if tt.createErr != nil {
						return nil, tt.createErr
					}
					created := *c
					created.ID = 5
					return &created, nil
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", jsonBody(t, tt.payload))
			rec := httptest.NewRecorder()
			newTestCategoryHandler(t, svc).CreateCategory(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				var got CategoryResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, CategoryResponse{ID: 5, Name: "Go", Description: "Gophers"}, got)
			}
		})
	}
}

func TestListCategories(t *testing.T) {
	t.Parallel()

	svc := &mocks.MockCategoryService{
		ListFn: func(_ context.Context) ([]domain.Category, error) {
			return []domain.Category{{ID: 1, Name: "Go"}, {ID: 2, Name: "Rust"}}, nil
		},
	}

	rec := httptest.NewRecorder()
	newTestCategoryHandler(t, svc).ListCategories(rec, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Rust", got[1].Name)
}

func TestGetCategory(t *testing.T) {
	t.Parallel()

	svc := &mocks.MockCategoryService{
		GetByIDFn: func(_ context.Context, id int64) (*domain.Category, error) {
			if id != 1 {
				return nil, store.ErrCategoryNotFound
			}
			return &domain.Category{ID: 1, Name: "Go"}, nil
		},
	}
	handler := newTestCategoryHandler(t, svc)

	for id, want := range map[string]int{"1": http.StatusOK, "2": http.StatusNotFound, "x": http.StatusBadRequest} {
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": id})
		rec := httptest.NewRecorder()
		handler.GetCategory(rec, req)
		assert.Equal(t, want, rec.Code, "id %s", id)
	}
}

func TestUpdateCategory(t *testing.T) {
	t.Parallel()

	svc := &mocks.MockCategoryService{
		UpdateFn: func(_ context.Context, id int64, c *domain.Category) (*domain.Category, error) {
			updated := *c
			updated.ID = id
			return &updated, nil
		},
	}

	req := withURLParams(
		httptest.NewRequest(http.MethodPut, "/", jsonBody(t, map[string]any{"name": "Golang", "description": "Renamed"})),
		map[string]string{"id": "4"},
	)
	rec := httptest.NewRecorder()
	newTestCategoryHandler(t, svc).UpdateCategory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, CategoryResponse{ID: 4, Name: "Golang", Description: "Renamed"}, got)
}

func TestDeleteCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusOK},
		{name: "not found", deleteErr: store.ErrCategoryNotFound, wantStatus: http.StatusNotFound},
		{name: "still has posts", deleteErr: store.ErrCategoryInUse, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.MockCategoryService{
				DeleteFn: func(_ context.Context, _ int64) error { return tt.deleteErr },
			}

			req := withURLParams(httptest.NewRequest(http.MethodDelete, "/", nil), map[string]string{"id": "1"})
			rec := httptest.NewRecorder()
			newTestCategoryHandler(t, svc).DeleteCategory(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
