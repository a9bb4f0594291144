package ports

import (
	"context"

	"github.com/neplink/classifieds-api/internal/core/domain"
)

// UserRepository defines persistence for account records. Both the postgres
// and the in-memory implementation must behave identically from the caller's
// perspective: same sentinel errors, same id assignment on Create.
type UserRepository interface {
	// Create stores the user and assigns its ID. Returns domain.ErrEmailTaken
	// when the email is already registered.
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id int64, role string) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
