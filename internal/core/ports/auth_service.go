package ports

import (
	"context"

	"github.com/neplink/classifieds-api/internal/core/domain"
)

// RegisterInput carries a validated registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	// Role defaults to domain.RoleUser when empty.
	Role string
}

type AuthService interface {
	// Register creates the account and returns a freshly issued token.
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	// Login verifies credentials. When roleAssert is non-empty the stored
	// role must match, otherwise the attempt fails as invalid credentials.
	Login(ctx context.Context, email, password, roleAssert string) (string, *domain.User, error)
}
