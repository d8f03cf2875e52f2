package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/mocks"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegister(t *testing.T) {
	t.Parallel()

	valid := map[string]any{
		"name":     "Ada Lovelace",
		"username": "ada",
		"email":    "ada@example.com",
		"password": "analytical",
	}

	with := func(key string, value any) map[string]any {
		out := make(map[string]any, len(valid))
		for k, v := range valid {
			out[k] = v
		}
		if value == nil {
			delete(out, key)
		} else {
			out[key] = value
		}
		return out
	}

	tests := []struct {
		name        string
		payload     map[string]any
		registerErr error
		wantStatus  int
		wantCode    string
		wantCalled  bool
	}{
		{name: "valid registration", payload: valid, wantStatus: http.StatusCreated, wantCalled: true},
		{name: "invalid email", payload: with("email", "invalid-email"), wantStatus: http.StatusBadRequest, wantCode: shared.CodeBadRequest},
		{name: "password too short", payload: with("password", "abc"), wantStatus: http.StatusBadRequest, wantCode: shared.CodeBadRequest},
		{name: "missing username", payload: with("username", nil), wantStatus: http.StatusBadRequest, wantCode: shared.CodeBadRequest},
		{
			name:        "username taken",
			payload:     valid,
			registerErr: store.ErrUsernameExists,
			wantStatus:  http.StatusConflict,
			wantCode:    shared.CodeConflict,
			wantCalled:  true,
		},
		{
			name:        "email taken",
			payload:     valid,
			registerErr: store.ErrEmailExists,
			wantStatus:  http.StatusConflict,
			wantCode:    shared.CodeConflict,
			wantCalled:  true,
		},
		{
			name:        "default role missing",
			payload:     valid,
			registerErr: auth.ErrDefaultRoleMissing,
			wantStatus:  http.StatusInternalServerError,
			wantCode:    shared.CodeInternal,
			wantCalled:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			svc := &mocks.MockAuthService{
				RegisterFn: func(_ context.Context, req auth.RegisterRequest) (*domain.User, error) {
					called = true
					assert.Equal(t, "ada", req.Username)
					assert.Equal(t, "analytical", req.Password)
					if tt.registerErr != nil {
						return nil, tt.registerErr
					}
					return &domain.User{ID: 7, Username: req.Username}, nil
				},
			}
			handler := NewAuthHandler(svc, nil)

			ctx, _, _ := logger.NewTestLogger(t)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", jsonBody(t, tt.payload)).
				WithContext(ctx)
			rec := httptest.NewRecorder()
			handler.Register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantStatus == http.StatusCreated {
				var body MessageResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "User registered successfully", body.Message)
				return
			}
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestRegister_MultibytePasswordOverByteLimit(t *testing.T) {
	t.Parallel()

	password := strings.Repeat("é", 72)
	called := false
	svc := &mocks.MockAuthService{
		RegisterFn: func(_ context.Context, req auth.RegisterRequest) (*domain.User, error) {
			called = true
			_, err := auth.NewBcryptHasher(4).Hash(req.Password)
			return nil, err
		},
	}
	handler := NewAuthHandler(svc, nil)

	ctx, _, _ := logger.NewTestLogger(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", jsonBody(t, map[string]any{
		"name":     "Ada Lovelace",
		"username": "ada",
		"email":    "ada@example.com",
		"password": password,
	})).WithContext(ctx)
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.True(t, called, "72 runes pass request validation")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, shared.CodeBadRequest, decodeError(t, rec).Code)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	expiresAt := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name       string
		payload    any
		loginErr   error
		wantStatus int
	}{
		{
			name:       "valid credentials",
			payload:    map[string]any{"usernameOrEmail": "ada", "password": "analytical"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid credentials",
			payload:    map[string]any{"usernameOrEmail": "ada", "password": "wrong"},
			loginErr:   auth.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing password",
			payload:    map[string]any{"usernameOrEmail": "ada"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "store failure",
			payload:    map[string]any{"usernameOrEmail": "ada", "password": "analytical"},
			loginErr:   errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.MockAuthService{
				LoginFn: func(_ context.Context, usernameOrEmail, _ string) (*auth.LoginResult, error) {
					if tt.loginErr != nil {
						return nil, tt.loginErr
					}
					return &auth.LoginResult{
						Token:     "signed-token",
						ExpiresAt: expiresAt,
						Identity:  auth.Identity{UserID: 1, Username: usernameOrEmail},
					}, nil
				},
			}
			handler := NewAuthHandler(svc, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", jsonBody(t, tt.payload))
			rec := httptest.NewRecorder()
			handler.Login(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				body := decodeError(t, rec)
				assert.Equal(t, shared.ErrorCode(tt.wantStatus), body.Code)
				assert.NotContains(t, body.Error, "connection reset")
				return
			}

			var body LoginResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "signed-token", body.AccessToken)
			assert.Equal(t, "Bearer", body.TokenType)
			assert.Equal(t, "2030-01-02T03:04:05Z", body.ExpiresAt)
		})
	}
}

func TestLoginResponseUsesCamelCase(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(newLoginResponse("tok", time.Unix(0, 0)))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(b, &fields))
	assert.Contains(t, fields, "accessToken")
	assert.Contains(t, fields, "tokenType")
	assert.Contains(t, fields, "expiresAt")
}
