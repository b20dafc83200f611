package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - role must be non-empty (presence proves the middleware ran).
//   - student role requires a non-empty level; without it the JWT is
//     structurally valid but operationally unusable, so reject with 401.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	level, _ := c.Get("level").(string)
	if role == domain.RoleStudent && level == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing level claim")
	}

	id, _ := c.Get("user_id").(string)
	email, _ := c.Get("email").(string)
	fullName, _ := c.Get("full_name").(string)

	return ports.Identity{
		ID:       id,
		Email:    email,
		FullName: fullName,
		Role:     role,
		Level:    level,
	}, nil
}
