package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/neplink/classifieds-api/internal/core/domain"
	"github.com/neplink/classifieds-api/internal/core/ports"
)

// ListingService implements the CRUD use cases once for all listing types.
// The resource name only feeds structured logs.
type ListingService[T domain.Listing[T]] struct {
	repo     ports.ListingRepository[T]
	resource string
	log      zerolog.Logger
}

func NewListingService[T domain.Listing[T]](repo ports.ListingRepository[T], resource string, log zerolog.Logger) *ListingService[T] {
	return &ListingService[T]{repo: repo, resource: resource, log: log}
}

func (s *ListingService[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	item.SetCreatedAt(time.Now().UTC())
	if err := s.repo.Create(ctx, item); err != nil {
		s.log.Error().Err(err).Str("resource", s.resource).Msg("create listing failed")
		return zero, err
	}
	s.log.Info().Str("resource", s.resource).Int64("id", item.GetID()).Int64("owner_id", item.GetOwnerID()).Msg("listing created")
	return item, nil
}

func (s *ListingService[T]) ListPublic(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx, true)
}

func (s *ListingService[T]) ListAll(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx, false)
}

func (s *ListingService[T]) Get(ctx context.Context, id int64, privileged bool) (T, error) {
	var zero T
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	// Hidden records must be indistinguishable from absent ones for
	// non-privileged callers.
	if !privileged && !item.IsVisible() {
		return zero, domain.ErrListingNotFound
	}
	return item, nil
}

func (s *ListingService[T]) Update(ctx context.Context, id int64, actor *domain.User, apply func(T)) (T, error) {
	var zero T
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if item.GetOwnerID() != actor.ID && !actor.IsAdmin() {
		return zero, domain.ErrNotAuthorized
	}
	apply(item)
	if err := s.repo.Update(ctx, item); err != nil {
		s.log.Error().Err(err).Str("resource", s.resource).Int64("id", id).Msg("update listing failed")
		return zero, err
	}
	return item, nil
}

func (s *ListingService[T]) Delete(ctx context.Context, id int64, actor *domain.User) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item.GetOwnerID() != actor.ID && !actor.IsAdmin() {
		return domain.ErrNotAuthorized
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("resource", s.resource).Int64("id", id).Msg("delete listing failed")
		return err
	}
	return nil
}
