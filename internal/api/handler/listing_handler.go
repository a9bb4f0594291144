package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/neplink/classifieds-api/internal/api/metrics"
	"github.com/neplink/classifieds-api/internal/api/middleware"
	"github.com/neplink/classifieds-api/internal/core/domain"
	"github.com/neplink/classifieds-api/internal/core/ports"
)

// ListingHandler serves the uniform CRUD surface shared by all four listing
// resources. Per-resource behavior lives entirely in the two bind functions:
// bindCreate validates the create payload and returns a fully populated
// record, bindUpdate validates the patch payload and returns the merge to
// apply to the stored record.
type ListingHandler[T domain.Listing[T]] struct {
	svc      ports.ListingService[T]
	resource string
	// noun is the human-readable singular used in error and delete messages.
	noun       string
	bindCreate func(c echo.Context, actor *domain.User) (T, error)
	bindUpdate func(c echo.Context) (func(T), error)
	log        zerolog.Logger
}

func NewListingHandler[T domain.Listing[T]](
	svc ports.ListingService[T],
	resource, noun string,
	bindCreate func(c echo.Context, actor *domain.User) (T, error),
	bindUpdate func(c echo.Context) (func(T), error),
	log zerolog.Logger,
) *ListingHandler[T] {
	return &ListingHandler[T]{
		svc:        svc,
		resource:   resource,
		noun:       noun,
		bindCreate: bindCreate,
		bindUpdate: bindUpdate,
		log:        log,
	}
}

// parseID reads the :id path parameter. Non-numeric ids map to 404 rather
// than 400 so malformed and absent ids are indistinguishable.
func (h *ListingHandler[T]) parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound, h.noun+" not found")
	}
	return id, nil
}

// ListPublic returns visible records only.
func (h *ListingHandler[T]) ListPublic(c echo.Context) error {
	items, err := h.svc.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ListAdmin returns every record including hidden ones.
func (h *ListingHandler[T]) ListAdmin(c echo.Context) error {
	items, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get returns a single record. Admins also see hidden records; everyone else
// gets 404 for them.
func (h *ListingHandler[T]) Get(c echo.Context) error {
	id, err := h.parseID(c)
	if err != nil {
		return err
	}

	privileged := false
	if user, ok := middleware.UserFrom(c); ok {
		privileged = user.IsAdmin()
	}

	item, err := h.svc.Get(c.Request().Context(), id, privileged)
	if err != nil {
		return h.mapError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ListingHandler[T]) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	item, err := h.bindCreate(c, actor)
	if err != nil {
		return err
	}

	created, err := h.svc.Create(c.Request().Context(), item)
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues(h.resource).Inc()
	return c.JSON(http.StatusCreated, created)
}

func (h *ListingHandler[T]) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := h.parseID(c)
	if err != nil {
		return err
	}

	apply, err := h.bindUpdate(c)
	if err != nil {
		return err
	}

	updated, err := h.svc.Update(c.Request().Context(), id, actor, apply)
	if err != nil {
		return h.mapError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *ListingHandler[T]) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := h.parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id, actor); err != nil {
		return h.mapError(err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: h.noun + " removed"})
}

// mapError attaches the resource noun to the generic listing sentinels so the
// response reads naturally per resource.
func (h *ListingHandler[T]) mapError(err error) error {
	switch err {
	case domain.ErrListingNotFound:
		return echo.NewHTTPError(http.StatusNotFound, h.noun+" not found")
	case domain.ErrNotAuthorized:
		return echo.NewHTTPError(http.StatusUnauthorized, "you do not own this "+h.noun)
	default:
		return err
	}
}
