package ports

import "github.com/neplink/classifieds-api/internal/core/domain"

// TokenClaims are the identity claims carried by a bearer token.
type TokenClaims struct {
	UserID int64
	Email  string
	Role   string
}

// TokenService issues and verifies signed, time-limited identity tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify returns domain.ErrInvalidToken for malformed, mis-signed, or
	// expired tokens; the failure modes are indistinguishable to callers.
	Verify(token string) (*TokenClaims, error)
}
