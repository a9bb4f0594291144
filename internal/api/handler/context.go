package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/neplink/classifieds-api/internal/api/middleware"
	"github.com/neplink/classifieds-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the confirmation envelope for delete operations.
type messageResponse struct {
	Message string `json:"message"`
}

// currentUser extracts the account injected by the Auth middleware. Routes
// behind Auth always have one; absence means the route is miswired, which is
// reported as an authentication failure rather than a 500.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return user, nil
}
