package memory

import (
	"context"
	"sync"

	"github.com/neplink/classifieds-api/internal/core/domain"
)

// ListingRepository is the in-memory counterpart of the postgres listing
// store, instantiated once per listing type. Records are cloned on the way in
// and out so callers never alias the stored state.
type ListingRepository[T domain.Listing[T]] struct {
	mu     sync.RWMutex
	items  []T
	nextID int64
}

func NewListingRepository[T domain.Listing[T]]() *ListingRepository[T] {
	return &ListingRepository[T]{nextID: 1}
}

func (r *ListingRepository[T]) Create(_ context.Context, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.SetID(r.nextID)
	r.nextID++
	r.items = append(r.items, item.Clone())
	return nil
}

func (r *ListingRepository[T]) List(_ context.Context, onlyVisible bool) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.items))
	for _, it := range r.items {
		if onlyVisible && !it.IsVisible() {
			continue
		}
		out = append(out, it.Clone())
	}
	return out, nil
}

func (r *ListingRepository[T]) GetByID(_ context.Context, id int64) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.GetID() == id {
			return it.Clone(), nil
		}
	}
	var zero T
	return zero, domain.ErrListingNotFound
}

func (r *ListingRepository[T]) Update(_ context.Context, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.GetID() == item.GetID() {
			r.items[i] = item.Clone()
			return nil
		}
	}
	return domain.ErrListingNotFound
}

func (r *ListingRepository[T]) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.GetID() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrListingNotFound
}

func (r *ListingRepository[T]) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}
