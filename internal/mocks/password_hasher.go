package mocks

import (
	"errors"
	"strings"

	"github.com/phrazzld/blog-api/internal/service/auth"
)

// hashedPrefix marks values produced by MockPasswordHasher.Hash.
const hashedPrefix = "hashed:"

// ErrPasswordMismatch is returned by MockPasswordHasher.Compare on mismatch.
var ErrPasswordMismatch = errors.New("password mismatch")

// MockPasswordHasher implements auth.PasswordHasher with a reversible,
// deterministic scheme so tests can build stored hashes by hand.
type MockPasswordHasher struct {
	HashErr error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// HashOf returns what Hash produces for password.
func HashOf(password string) string {
	return hashedPrefix + password
}

// Hash implements auth.PasswordHasher.Hash
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return HashOf(password), nil
}

// Compare implements auth.PasswordHasher.Compare
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if !strings.HasPrefix(hashedPassword, hashedPrefix) || hashedPassword != HashOf(password) {
		return ErrPasswordMismatch
	}
	return nil
}
