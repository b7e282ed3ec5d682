package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cleanmatch/marketplace-api/internal/core/domain"
	"github.com/cleanmatch/marketplace-api/internal/core/ports"
)

// identityKey is the echo context key under which the authenticated identity
// is stored as a single typed value.
const identityKey = "identity"

// IdentityFrom extracts the identity attached by Auth.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok
}

// SetIdentity attaches an identity to the context. Exported for tests that
// exercise handlers without the full middleware chain.
func SetIdentity(c echo.Context, id domain.Identity) {
	c.Set(identityKey, id)
}

// Auth validates the bearer token and injects the decoded identity into the
// context. When versions is non-nil the token's version claim is compared
// against the store; tokens issued before the last bump are rejected. A store
// read failure fails open so a cache outage cannot take down authentication.
func Auth(tokens ports.TokenService, versions ports.TokenVersions, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if versions != nil {
				current, err := versions.Current(c.Request().Context(), identity.UserID)
				switch {
				case err != nil:
					log.Warn().Err(err).Str("user_id", identity.UserID).Msg("token version check unavailable")
				case current != identity.TokenVersion:
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			SetIdentity(c, identity)
			return next(c)
		}
	}
}
