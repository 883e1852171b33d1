package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
	"github.com/smartoffice/room-booking-api/internal/core/ports"
)

// RequireRoles enforces role-based access control. Memberships are reloaded
// from the store on every request, so a revoked role stops granting access
// immediately rather than at token expiry.
func RequireRoles(roles ports.RoleRepository, required ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerID, ok := UserID(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			held, err := roles.RolesFor(c.Request().Context(), callerID)
			if err != nil {
				return err
			}
			if !domain.Authorize(held, required...) {
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}
			return next(c)
		}
	}
}

// The three policy gates attached to routes.

func IsAdmin(roles ports.RoleRepository) echo.MiddlewareFunc {
	return RequireRoles(roles, domain.RoleAdmin)
}

func IsModerator(roles ports.RoleRepository) echo.MiddlewareFunc {
	return RequireRoles(roles, domain.RoleModerator)
}

func IsModeratorOrAdmin(roles ports.RoleRepository) echo.MiddlewareFunc {
	return RequireRoles(roles, domain.RoleModerator, domain.RoleAdmin)
}
