package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdir/employee-directory/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty role proves the
// middleware ran on this route.
func ctxIdentity(c echo.Context) (username string, role domain.Role, err error) {
	roleStr, _ := c.Get("role").(string)
	if roleStr == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ = c.Get("username").(string)
	return username, domain.Role(roleStr), nil
}
