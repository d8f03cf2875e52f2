package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/blog-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService.
type MockTokenService struct {
	IssueTokenFn    func(ctx context.Context, identity auth.Identity, expiresAt time.Time) (string, error)
	GenerateTokenFn func(ctx context.Context, identity auth.Identity) (string, time.Time, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Defaults used when the matching function field is nil.
	Token     string
	ExpiresAt time.Time
	Claims    *auth.Claims
	Err       error
}

var _ auth.TokenService = (*MockTokenService)(nil)

// IssueToken implements auth.TokenService.IssueToken
func (m *MockTokenService) IssueToken(ctx context.Context, identity auth.Identity, expiresAt time.Time) (string, error) {
	if m.IssueTokenFn != nil {
		return m.IssueTokenFn(ctx, identity, expiresAt)
	}
	return m.Token, m.Err
}

// GenerateToken implements auth.TokenService.GenerateToken
func (m *MockTokenService) GenerateToken(ctx context.Context, identity auth.Identity) (string, time.Time, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, identity)
	}
	return m.Token, m.ExpiresAt, m.Err
}

// ValidateToken implements auth.TokenService.ValidateToken
func (m *MockTokenService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Claims, nil
}
