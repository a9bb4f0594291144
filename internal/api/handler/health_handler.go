package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler reports liveness and backing-store readiness. Either pool may
// be nil when the corresponding store is not configured.
type HealthHandler struct {
	driver string
	pg     *pgxpool.Pool
	rdb    *redis.Client
}

func NewHealthHandler(driver string, pg *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{driver: driver, pg: pg, rdb: rdb}
}

// Liveness always answers ok while the process is up.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness pings the configured stores and reports per-dependency status.
// Any failing dependency turns the response into a 503.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := map[string]string{"store": h.driver}

	if h.pg != nil {
		if err := h.pg.Ping(ctx); err != nil {
			checks["postgres"] = "down"
			status = http.StatusServiceUnavailable
		} else {
			checks["postgres"] = "up"
		}
	}
	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			checks["redis"] = "down"
			status = http.StatusServiceUnavailable
		} else {
			checks["redis"] = "up"
		}
	}

	return c.JSON(status, checks)
}
