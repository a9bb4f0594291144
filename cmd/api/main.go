package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	_ "github.com/neplink/classifieds-api/docs"
	"github.com/neplink/classifieds-api/internal/api"
	"github.com/neplink/classifieds-api/internal/api/handler"
	"github.com/neplink/classifieds-api/internal/api/middleware"
	"github.com/neplink/classifieds-api/internal/core/domain"
	"github.com/neplink/classifieds-api/internal/infrastructure/config"
	"github.com/neplink/classifieds-api/internal/infrastructure/db/memory"
	"github.com/neplink/classifieds-api/internal/infrastructure/db/postgres"
	"github.com/neplink/classifieds-api/internal/infrastructure/db/redis"
	"github.com/neplink/classifieds-api/pkg/logger"
)

// @title        Classifieds API
// @version      1.0
// @description  Community classifieds backend: news, marketplace, jobs, and rentals.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	var stores api.Stores
	var pool *pgxpool.Pool

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err = postgres.Connect(ctx, postgres.Config{
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

		stores = api.Stores{
			Users:       postgres.NewUserRepository(pool),
			News:        postgres.NewListingRepository(pool, postgres.NewsTable()),
			Marketplace: postgres.NewListingRepository(pool, postgres.MarketplaceTable()),
			Jobs:        postgres.NewListingRepository(pool, postgres.JobsTable()),
			Rentals:     postgres.NewListingRepository(pool, postgres.RentalsTable()),
		}
	case config.DriverMemory:
		stores = api.Stores{
			Users:       memory.NewUserRepository(),
			News:        memory.NewListingRepository[*domain.News](),
			Marketplace: memory.NewListingRepository[*domain.MarketplaceItem](),
			Jobs:        memory.NewListingRepository[*domain.Job](),
			Rentals:     memory.NewListingRepository[*domain.Rental](),
		}
	}

	var rdb *goredis.Client
	var limiter middleware.Allower
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()
		limiter = redis.NewLimiter(rdb, cfg.RateLimitPerMin, time.Minute)
	}

	e := api.NewRouter(stores, api.RouterConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Logger:    log,
		Limiter:   limiter,
		Health:    handler.NewHealthHandler(cfg.StoreDriver, pool, rdb),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
