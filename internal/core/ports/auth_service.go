package ports

import (
	"context"

	"github.com/cleanmatch/marketplace-api/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Role            string
	Name            string
	Email           string
	Password        string
	ProfileImageURL string
	BasePrice       *int
}

// AuthService implements registration, login and token revocation.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout bumps the caller's token version, invalidating every token
	// issued so far.
	Logout(ctx context.Context, identity domain.Identity) error
}
