package api

import (
	"time"

	echoprometheus "github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/neplink/classifieds-api/internal/api/handler"
	"github.com/neplink/classifieds-api/internal/api/middleware"
	"github.com/neplink/classifieds-api/internal/core/domain"
	"github.com/neplink/classifieds-api/internal/core/ports"
	"github.com/neplink/classifieds-api/internal/core/service"
)

// Stores bundles the repositories for one storage backend. The caller picks
// postgres or memory once at startup and hands the matching set here.
type Stores struct {
	Users       ports.UserRepository
	News        ports.ListingRepository[*domain.News]
	Marketplace ports.ListingRepository[*domain.MarketplaceItem]
	Jobs        ports.ListingRepository[*domain.Job]
	Rentals     ports.ListingRepository[*domain.Rental]
}

// RouterConfig carries everything NewRouter needs beyond the stores.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
	// Limiter, when non-nil, rate limits the auth routes.
	Limiter middleware.Allower
	// Health is mounted at /health and /health/ready.
	Health *handler.HealthHandler
	// Registry defaults to the global Prometheus registry. Tests inject their
	// own so building several routers does not double-register collectors.
	Registry *prometheus.Registry
}

// NewRouter builds the Echo instance with all routes, middleware, and
// services wired.
func NewRouter(stores Stores, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	if cfg.Registry != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem: "classifieds", Registerer: cfg.Registry,
		}))
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: cfg.Registry}))
	} else {
		e.Use(echoprometheus.NewMiddleware("classifieds"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log := cfg.Logger

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	auth := service.NewAuthService(stores.Users, tokens, log)
	newsSvc := service.NewListingService(stores.News, "news", log)
	marketSvc := service.NewListingService(stores.Marketplace, "marketplace", log)
	jobsSvc := service.NewListingService(stores.Jobs, "jobs", log)
	rentalsSvc := service.NewListingService(stores.Rentals, "rentals", log)
	adminSvc := service.NewAdminService(stores.Users, stores.News, stores.Marketplace, stores.Jobs, stores.Rentals, log)

	authHandler := handler.NewAuthHandler(auth, log)
	adminHandler := handler.NewAdminHandler(adminSvc, log)
	newsHandler := handler.NewNewsHandler(newsSvc, log)
	marketHandler := handler.NewMarketplaceHandler(marketSvc, log)
	jobsHandler := handler.NewJobsHandler(jobsSvc, log)
	rentalsHandler := handler.NewRentalsHandler(rentalsSvc, log)

	requireAuth := middleware.Auth(tokens, stores.Users)
	optionalAuth := middleware.AuthOptional(tokens, stores.Users)

	if cfg.Health != nil {
		e.GET("/health", cfg.Health.Liveness)
		e.GET("/health/ready", cfg.Health.Readiness)
	}

	root := e.Group("/api")

	authGroup := root.Group("/auth")
	if cfg.Limiter != nil {
		authGroup.Use(middleware.RateLimit(cfg.Limiter, log))
	}
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// News creation is open to admins and owners; the other listing types are
	// owner-only (admins manage them through ownership override on mutations).
	registerListingRoutes(root, "/news", newsHandler,
		requireAuth, optionalAuth, middleware.RBAC(domain.RoleAdmin, domain.RoleOwner))
	registerListingRoutes(root, "/marketplace", marketHandler,
		requireAuth, optionalAuth, middleware.RBAC(domain.RoleOwner))
	registerListingRoutes(root, "/jobs", jobsHandler,
		requireAuth, optionalAuth, middleware.RBAC(domain.RoleOwner))
	registerListingRoutes(root, "/rentals", rentalsHandler,
		requireAuth, optionalAuth, middleware.RBAC(domain.RoleOwner))

	admin := root.Group("/admin", requireAuth, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id", adminHandler.UpdateUserRole)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	return e
}

// registerListingRoutes mounts the uniform CRUD surface for one listing type.
// Reads are public (single reads resolve an optional token so admins can see
// hidden records); /admin is the unfiltered collection; creation is gated by
// createGate; updates and deletes only need authentication since ownership is
// enforced in the service.
func registerListingRoutes[T domain.Listing[T]](
	g *echo.Group,
	prefix string,
	h *handler.ListingHandler[T],
	requireAuth, optionalAuth, createGate echo.MiddlewareFunc,
) {
	res := g.Group(prefix)
	res.GET("", h.ListPublic)
	res.GET("/admin", h.ListAdmin, requireAuth, middleware.RBAC(domain.RoleAdmin))
	res.GET("/:id", h.Get, optionalAuth)
	res.POST("", h.Create, requireAuth, createGate)
	res.PUT("/:id", h.Update, requireAuth)
	res.DELETE("/:id", h.Delete, requireAuth)
}
