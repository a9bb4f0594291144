package ports

import (
	"context"

	"github.com/neplink/classifieds-api/internal/core/domain"
)

// ListingRepository is the generic persistence contract instantiated once per
// listing type. Implementations assign the record id on Create and return
// domain.ErrListingNotFound for absent ids.
type ListingRepository[T domain.Listing[T]] interface {
	Create(ctx context.Context, item T) error
	// List returns records in insertion order. With onlyVisible set, records
	// whose visibility flag is false are excluded.
	List(ctx context.Context, onlyVisible bool) ([]T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	// Update replaces the full row identified by the item's id.
	Update(ctx context.Context, item T) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// Counter is the slice of ListingRepository the admin stats endpoint needs.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}
