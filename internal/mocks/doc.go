// Package mocks provides centralized mock implementations for testing.
//
// Store and service mocks use function fields: a nil field falls back to the
// zero value or to the mock's default fields. UserStore additionally has a
// testify/mock variant for tests that assert call arguments.
//
//	tokens := &mocks.MockTokenService{
//	    ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	        return &auth.Claims{UserID: 1, Roles: []string{domain.RoleAdmin}}, nil
//	    },
//	}
package mocks
