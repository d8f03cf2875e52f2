package auth

import (
	"context"
	"time"
)

// TokenService issues and validates bearer tokens.
type TokenService interface {
	// IssueToken creates a signed token for identity that expires at expiresAt.
	IssueToken(ctx context.Context, identity Identity, expiresAt time.Time) (string, error)

	// GenerateToken creates a signed token using the configured lifetime.
	// It returns the token together with its expiry.
	GenerateToken(ctx context.Context, identity Identity) (string, time.Time, error)

	// ValidateToken verifies signature, algorithm and expiry and returns the claims.
	// Any failure is reported as ErrInvalidToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of a token.
type Claims struct {
	UserID   int64
	Username string
	Roles    []string

	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// Identity returns the principal the token was issued for.
func (c *Claims) Identity() Identity {
	return Identity{UserID: c.UserID, Username: c.Username, Roles: c.Roles}
}
