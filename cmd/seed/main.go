// Command seed populates Postgres with demo accounts and sample listings.
// Safe to re-run: existing accounts are kept and listings are only created
// alongside a fresh account.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/neplink/classifieds-api/internal/core/domain"
	"github.com/neplink/classifieds-api/internal/infrastructure/config"
	"github.com/neplink/classifieds-api/internal/infrastructure/db/postgres"
	"github.com/neplink/classifieds-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)

	accounts := []struct {
		name, email, password, role string
	}{
		{"Admin", "admin@neplink.local", "admin123", domain.RoleAdmin},
		{"Demo Owner", "owner@neplink.local", "owner123", domain.RoleOwner},
		{"Demo User", "user@neplink.local", "user1234", domain.RoleUser},
	}

	var owner *domain.User
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash password")
		}
		u := &domain.User{Name: a.name, Email: a.email, PasswordHash: string(hash), Role: a.role, CreatedAt: time.Now().UTC()}
		if err := users.Create(ctx, u); err != nil {
			if errors.Is(err, domain.ErrEmailTaken) {
				log.Info().Str("email", a.email).Msg("account already present, skipping")
				continue
			}
			log.Fatal().Err(err).Str("email", a.email).Msg("seed account failed")
		}
		log.Info().Str("email", a.email).Str("role", a.role).Int64("id", u.ID).Msg("account seeded")
		if a.role == domain.RoleOwner {
			owner = u
		}
	}

	// Sample listings belong to the freshly created owner; skip them when the
	// owner account already existed.
	if owner == nil {
		log.Info().Msg("seed complete")
		return
	}

	now := time.Now().UTC()

	news := postgres.NewListingRepository(pool, postgres.NewsTable())
	if err := news.Create(ctx, &domain.News{
		Title:     "Community portal launched",
		Content:   "The neighborhood classifieds portal is now open for listings.",
		Category:  "Technology",
		Author:    owner.Name,
		Tags:      []string{"announcement"},
		Published: true,
		OwnerID:   owner.ID,
		CreatedAt: now,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed news failed")
	}

	market := postgres.NewListingRepository(pool, postgres.MarketplaceTable())
	if err := market.Create(ctx, &domain.MarketplaceItem{
		Name:        "Handwoven dhaka shawl",
		Description: "Traditional dhaka fabric shawl, never worn.",
		Price:       2500,
		Category:    "Traditional",
		Condition:   "New",
		Location:    "Kathmandu",
		Available:   true,
		OwnerID:     owner.ID,
		CreatedAt:   now,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed marketplace failed")
	}

	jobs := postgres.NewListingRepository(pool, postgres.JobsTable())
	if err := jobs.Create(ctx, &domain.Job{
		Title:        "Backend developer",
		Description:  "Build and operate Go services for the portal.",
		Company:      "NepLink",
		Location:     "Lalitpur",
		Type:         "Full-time",
		Category:     "IT",
		SalaryMin:    80000,
		SalaryMax:    140000,
		Currency:     domain.DefaultCurrency,
		Requirements: []string{"Go", "PostgreSQL"},
		ContactEmail: "jobs@neplink.local",
		Active:       true,
		OwnerID:      owner.ID,
		CreatedAt:    now,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed jobs failed")
	}

	rentals := postgres.NewListingRepository(pool, postgres.RentalsTable())
	if err := rentals.Create(ctx, &domain.Rental{
		Title:         "Two bedroom flat near Patan Durbar",
		Description:   "Sunny second-floor flat with parking.",
		PropertyType:  "Apartment",
		Street:        "Mangal Bazar",
		City:          "Lalitpur",
		State:         "Bagmati",
		Bedrooms:      2,
		Bathrooms:     1,
		Area:          85,
		Rent:          35000,
		Currency:      domain.DefaultCurrency,
		Amenities:     []string{"parking", "water tank"},
		ContactPerson: owner.Name,
		ContactEmail:  owner.Email,
		Available:     true,
		OwnerID:       owner.ID,
		CreatedAt:     now,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed rentals failed")
	}

	log.Info().Msg("seed complete")
}
