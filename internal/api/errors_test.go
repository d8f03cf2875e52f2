package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/service"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "nil error", err: nil, expectedStatus: http.StatusInternalServerError},
		{name: "invalid credentials", err: auth.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized},
		{
			name:           "wrapped invalid token",
			err:            fmt.Errorf("failed to authenticate: %w", auth.ErrInvalidToken),
			expectedStatus: http.StatusUnauthorized,
		},
		{name: "forbidden", err: domain.ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "post not found", err: store.ErrPostNotFound, expectedStatus: http.StatusNotFound},
		{
			name:           "not found behind service error",
			err:            &service.ServiceError{Operation: "get post", Err: store.ErrCategoryNotFound},
			expectedStatus: http.StatusNotFound,
		},
		{name: "username exists", err: store.ErrUsernameExists, expectedStatus: http.StatusConflict},
		{name: "email exists", err: store.ErrEmailExists, expectedStatus: http.StatusConflict},
		{name: "category in use", err: store.ErrCategoryInUse, expectedStatus: http.StatusConflict},
		{
			name:           "field validation",
			err:            domain.NewValidationError("title", "must have at least 2 characters", nil),
			expectedStatus: http.StatusBadRequest,
		},
		{name: "invalid id", err: domain.ErrInvalidID, expectedStatus: http.StatusBadRequest},
		{name: "invalid sort field", err: domain.ErrInvalidSortField, expectedStatus: http.StatusBadRequest},
		{name: "comment not in post", err: service.ErrCommentNotInPost, expectedStatus: http.StatusBadRequest},
		{name: "empty body", err: shared.ErrEmptyBody, expectedStatus: http.StatusBadRequest},
		{name: "missing default role", err: auth.ErrDefaultRoleMissing, expectedStatus: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("unknown error"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: "An unexpected error occurred"},
		{name: "credentials", err: auth.ErrInvalidCredentials, expected: "Invalid username/email or password"},
		{name: "post not found", err: fmt.Errorf("load: %w", store.ErrPostNotFound), expected: "Post not found"},
		{name: "category not found", err: store.ErrCategoryNotFound, expected: "Category not found"},
		{name: "username exists", err: store.ErrUsernameExists, expected: "Username already exists"},
		{name: "category in use", err: store.ErrCategoryInUse, expected: "Category still has posts"},
		{
			name:     "field validation",
			err:      domain.NewValidationError("body", "must have at least 10 characters", nil),
			expected: "Invalid body: must have at least 10 characters",
		},
		{name: "sort field", err: fmt.Errorf("%w: %q", domain.ErrInvalidSortField, "secret"), expected: "Invalid sortBy value"},
		{
			name:     "database failure",
			err:      errors.New("pq: connection to postgres://admin:pw@db/blog failed"),
			expected: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	type payload struct {
		Email string `json:"email" validate:"required,email"`
		Body  string `json:"body"  validate:"min=10"`
	}

	tests := []struct {
		name     string
		input    payload
		expected string
	}{
		{name: "required", input: payload{Body: "long enough body"}, expected: "Invalid email: required field"},
		{name: "format", input: payload{Email: "nope", Body: "long enough body"}, expected: "Invalid email: invalid email format"},
		{name: "min length", input: payload{Email: "a@b.io", Body: "short"}, expected: "Invalid body: must be at least 10 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := shared.ValidateRequest(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.expected, SanitizeValidationError(err))
		})
	}

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("plain")))
}

func TestHandleAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		fallback    string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "not found keeps mapped message",
			err:         store.ErrPostNotFound,
			fallback:    "Failed to get post",
			wantStatus:  http.StatusNotFound,
			wantMessage: "Post not found",
		},
		{
			name:        "internal uses fallback",
			err:         errors.New("password=hunter2 connection refused"),
			fallback:    "Failed to get post",
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to get post",
		},
		{
			name:        "internal without fallback",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, _, logs := logger.NewTestLogger(t)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/getById/1", nil).WithContext(ctx)
			rec := httptest.NewRecorder()

			HandleAPIError(rec, req, tt.err, tt.fallback)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Error)
			assert.Equal(t, shared.ErrorCode(tt.wantStatus), body.Code)
			assert.NotContains(t, rec.Body.String(), "hunter2")
			assert.NotContains(t, logs.String(), "hunter2")
		})
	}
}
