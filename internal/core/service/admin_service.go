package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/neplink/classifieds-api/internal/core/domain"
	"github.com/neplink/classifieds-api/internal/core/ports"
)

// AdminService aggregates dashboard counts and manages user accounts.
type AdminService struct {
	users       ports.UserRepository
	news        ports.Counter
	marketplace ports.Counter
	jobs        ports.Counter
	rentals     ports.Counter
	log         zerolog.Logger
}

func NewAdminService(users ports.UserRepository, news, marketplace, jobs, rentals ports.Counter, log zerolog.Logger) *AdminService {
	return &AdminService{
		users:       users,
		news:        news,
		marketplace: marketplace,
		jobs:        jobs,
		rentals:     rentals,
		log:         log,
	}
}

func (s *AdminService) Stats(ctx context.Context) (*ports.Stats, error) {
	stats := &ports.Stats{}
	counts := []struct {
		dst *int64
		src ports.Counter
	}{
		{&stats.News, s.news},
		{&stats.Marketplace, s.marketplace},
		{&stats.Jobs, s.jobs},
		{&stats.Rentals, s.rentals},
		{&stats.Users, s.users},
	}
	for _, c := range counts {
		n, err := c.src.Count(ctx)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return stats, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) ChangeRole(ctx context.Context, actor *domain.User, id int64, role string) (*domain.User, error) {
	if actor.ID == id {
		return nil, domain.ErrSelfAction
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("admin_id", actor.ID).Int64("user_id", id).Str("role", role).Msg("user role changed")
	return user, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, actor *domain.User, id int64) error {
	if actor.ID == id {
		return domain.ErrSelfAction
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("admin_id", actor.ID).Int64("user_id", id).Msg("user deleted")
	return nil
}

var _ ports.AdminService = (*AdminService)(nil)
