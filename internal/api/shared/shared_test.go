package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))

	generated := GetTraceID(SetTraceID(context.Background(), ""))
	assert.Len(t, generated, 36)

	assert.Equal(t, "upstream-id", GetTraceID(SetTraceID(context.Background(), "upstream-id")))
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	_, ok := GetIdentity(context.Background())
	assert.False(t, ok)

	want := auth.Identity{UserID: 3, Username: "ada", Roles: []string{"ROLE_USER"}}
	got, ok := GetIdentity(WithIdentity(context.Background(), want))
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	ctx, _, logs := logger.NewTestLogger(t)
	ctx = SetTraceID(ctx, "trace-1")
	r := httptest.NewRequest(http.MethodGet, "/api/v1/posts/getById/1", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "An unexpected error occurred",
		errors.New("dial tcp: postgres://blog:hunter2@db:5432/blog refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Error: "An unexpected error occurred", Code: CodeInternal, TraceID: "trace-1"}, body)
	assert.NotContains(t, w.Body.String(), "hunter2")

	assert.Contains(t, logs.String(), "API error response")
	assert.NotContains(t, logs.String(), "hunter2")
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		http.StatusBadRequest:          CodeBadRequest,
		http.StatusUnauthorized:        CodeUnauthorized,
		http.StatusForbidden:           CodeForbidden,
		http.StatusNotFound:            CodeNotFound,
		http.StatusConflict:            CodeConflict,
		http.StatusTooManyRequests:     CodeTooManyRequests,
		http.StatusUnprocessableEntity: CodeBadRequest,
		http.StatusInternalServerError: CodeInternal,
		http.StatusServiceUnavailable:  CodeInternal,
	}
	for status, want := range tests {
		assert.Equal(t, want, ErrorCode(status), "status %d", status)
	}
}

type sample struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func TestDecodeAndValidate(t *testing.T) {
	t.Parallel()

	decode := func(body string) (sample, error) {
		var s sample
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		err := DecodeJSON(httptest.NewRecorder(), r, &s)
		return s, err
	}

	s, err := decode(`{"name":"Ada","email":"ada@example.com"}`)
	require.NoError(t, err)
	assert.NoError(t, ValidateRequest(s))

	_, err = decode(`{"name":"Ada","admin":true}`)
	assert.Error(t, err, "unknown fields are rejected")

	_, err = decode(`{not json`)
	assert.Error(t, err)

	s, err = decode(`{"name":"Ada","email":"nope"}`)
	require.NoError(t, err)
	err = ValidateRequest(s)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "email", verrs[0].Field())

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	assert.ErrorIs(t, DecodeJSON(httptest.NewRecorder(), r, &s), ErrEmptyBody)
}
