package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdir/employee-directory/internal/core/domain"
	"github.com/staffdir/employee-directory/internal/core/service"
)

// RBAC enforces role-based access through the core access policy. The
// policy's three outcomes map onto HTTP: allow passes through, the login
// redirect becomes 401, the unauthorized redirect becomes 403.
func RBAC(policy *service.AccessPolicy, allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch policy.Decide(allowed...) {
			case service.Allow:
				return next(c)
			case service.RedirectLogin:
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			default:
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
		}
	}
}
