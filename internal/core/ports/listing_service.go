package ports

import (
	"context"

	"github.com/neplink/classifieds-api/internal/core/domain"
)

// ListingService defines the use-case operations shared by all four listing
// resources. Visibility filtering and ownership checks live here so the HTTP
// layer stays uniform.
type ListingService[T domain.Listing[T]] interface {
	// Create persists a fully bound record (owner and defaults already set by
	// the transport layer) and stamps the creation timestamp.
	Create(ctx context.Context, item T) (T, error)
	ListPublic(ctx context.Context) ([]T, error)
	ListAll(ctx context.Context) ([]T, error)
	// Get returns domain.ErrListingNotFound for hidden records unless the
	// caller is privileged, so hidden ids are indistinguishable from absent ones.
	Get(ctx context.Context, id int64, privileged bool) (T, error)
	// Update applies the merge function to the stored record. The actor must
	// be the record owner or an admin, otherwise domain.ErrNotAuthorized.
	Update(ctx context.Context, id int64, actor *domain.User, apply func(T)) (T, error)
	Delete(ctx context.Context, id int64, actor *domain.User) error
}
