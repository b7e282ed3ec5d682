package ports

import "github.com/cleanmatch/marketplace-api/internal/core/domain"

// TokenService issues and verifies signed, stateless session tokens.
type TokenService interface {
	// Issue produces a signed, time-limited credential for the identity.
	Issue(identity domain.Identity) (string, error)
	// Verify checks signature and expiry and returns the decoded identity.
	// Expired, malformed and badly signed tokens all fail with
	// domain.ErrInvalidToken.
	Verify(token string) (domain.Identity, error)
}
