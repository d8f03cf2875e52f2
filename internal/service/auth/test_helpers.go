package auth

import (
	"context"
	"fmt"
	"time"
)

// TestSecret is a signing secret long enough for HS256, for use in tests only.
const TestSecret = "test-jwt-secret-that-is-32-chars-long"

// NewTestTokenService creates a token service with an injectable clock.
// A nil timeFunc uses time.Now.
func NewTestTokenService(secret string, lifetime time.Duration, timeFunc func() time.Time) TokenService {
	svc, err := newHMACTokenService(secret, lifetime, timeFunc)
	if err != nil {
		// ALLOW-PANIC
		panic(fmt.Sprintf("failed to create test token service: %v", err))
	}
	return svc
}

// GenerateAuthHeaderForTesting returns a "Bearer <token>" header value for
// identity, signed with TestSecret and valid for one hour.
func GenerateAuthHeaderForTesting(identity Identity) (string, error) {
	token, _, err := NewTestTokenService(TestSecret, time.Hour, nil).GenerateToken(context.Background(), identity)
	if err != nil {
		return "", err
	}
	return "Bearer " + token, nil
}
