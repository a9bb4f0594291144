package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/neplink/classifieds-api/internal/core/domain"
	"github.com/neplink/classifieds-api/internal/core/ports"
)

// userContextKey is where Auth stores the resolved account.
const userContextKey = "user"

// UserFrom returns the account attached to the request by Auth, if any.
func UserFrom(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userContextKey).(*domain.User)
	return user, ok
}

// Auth extracts the bearer token, verifies it, resolves the embedded user id
// against the credential store, and attaches the account to the context.
// A missing credential is 401; a bad token or a vanished account is 403.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "access token required")
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "user not found")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// AuthOptional resolves a bearer token when one is present but lets anonymous
// or badly authenticated requests through without an account attached. Used
// on public reads where admins get an unfiltered view.
func AuthOptional(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return next(c)
			}
			claims, err := tokens.Verify(token)
			if err != nil {
				return next(c)
			}
			if user, err := users.FindByID(c.Request().Context(), claims.UserID); err == nil {
				c.Set(userContextKey, user)
			}
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
