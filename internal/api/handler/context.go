package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cleanmatch/marketplace-api/internal/api/middleware"
	"github.com/cleanmatch/marketplace-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing or
// incomplete identity means the middleware did not run, reject with 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || identity.UserID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
