package ports

import (
	"context"

	"github.com/neplink/classifieds-api/internal/core/domain"
)

// Stats aggregates record counts for the admin dashboard. Listing counts are
// unfiltered (admin view).
type Stats struct {
	News        int64 `json:"news"`
	Marketplace int64 `json:"marketplace"`
	Jobs        int64 `json:"jobs"`
	Rentals     int64 `json:"rentals"`
	Users       int64 `json:"users"`
}

// AdminService implements user management and dashboard aggregates. Actors
// may never change or delete their own account through it.
type AdminService interface {
	Stats(ctx context.Context) (*Stats, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ChangeRole(ctx context.Context, actor *domain.User, id int64, role string) (*domain.User, error)
	DeleteUser(ctx context.Context, actor *domain.User, id int64) error
}
