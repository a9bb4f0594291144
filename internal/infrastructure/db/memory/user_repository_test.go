package memory

import (
	"context"
	"testing"

	"github.com/neplink/classifieds-api/internal/core/domain"
)

func TestUserRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewUserRepository()

	a := &domain.User{Name: "A", Email: "a@example.com"}
	b := &domain.User{Name: "B", Email: "b@example.com"}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("create a: %v", err)
	}
	if err := repo.Create(context.Background(), b); err != nil {
		t.Fatalf("create b: %v", err)
	}
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", a.ID, b.ID)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	_ = repo.Create(context.Background(), &domain.User{Email: "a@example.com"})

	err := repo.Create(context.Background(), &domain.User{Email: "a@example.com"})
	if err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserRepository_FindersAndSentinels(t *testing.T) {
	repo := NewUserRepository()
	_ = repo.Create(context.Background(), &domain.User{Email: "a@example.com", Role: domain.RoleUser})

	if _, err := repo.FindByEmail(context.Background(), "a@example.com"); err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if _, err := repo.FindByEmail(context.Background(), "ghost@example.com"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), 1); err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), 99); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository()
	_ = repo.Create(context.Background(), &domain.User{Email: "a@example.com", Role: domain.RoleUser})

	got, _ := repo.FindByID(context.Background(), 1)
	got.Role = domain.RoleAdmin

	fresh, _ := repo.FindByID(context.Background(), 1)
	if fresh.Role != domain.RoleUser {
		t.Fatalf("stored record was mutated through a returned pointer")
	}
}

func TestUserRepository_UpdateRoleAndDelete(t *testing.T) {
	repo := NewUserRepository()
	_ = repo.Create(context.Background(), &domain.User{Email: "a@example.com", Role: domain.RoleUser})

	updated, err := repo.UpdateRole(context.Background(), 1, domain.RoleOwner)
	if err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	if updated.Role != domain.RoleOwner {
		t.Fatalf("role not updated: %+v", updated)
	}
	if _, err := repo.UpdateRole(context.Background(), 99, domain.RoleOwner); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(context.Background(), 1); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}

	if n, _ := repo.Count(context.Background()); n != 0 {
		t.Fatalf("expected empty store, got %d", n)
	}
}
