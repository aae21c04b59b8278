package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/core-platform/launchpad/internal/api/middleware"
	"github.com/core-platform/launchpad/internal/core/domain"
	"github.com/core-platform/launchpad/internal/core/ports"
)

// identity extracts the session claims attached by the Session middleware.
// A missing identity means a route was wired without the middleware; treat
// it as unauthenticated rather than panicking.
func identity(c echo.Context) (*ports.SessionClaims, error) {
	claims, ok := middleware.Identity(c)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.NewValidationError("Invalid id")
	}
	return uint(id), nil
}
