package ports

import (
	"context"

	"github.com/cleanmatch/marketplace-api/internal/core/domain"
)

// CleanerProfileInput carries the cleaner profile update payload.
type CleanerProfileInput struct {
	City            string
	District        string
	Regions         []string
	Gender          string
	BasePrice       *int
	ProfileImageURL string
	Phone           string
}

// CustomerProfileInput carries the customer profile update payload.
type CustomerProfileInput struct {
	City            string
	District        string
	Street          string
	Phone           string
	ProfileImageURL string
}

// ProfileService implements profile reads and role-scoped profile updates.
// Updates are always scoped to the authenticated user's own id.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	UpdateCleaner(ctx context.Context, userID string, input CleanerProfileInput) (*domain.User, error)
	UpdateCustomer(ctx context.Context, userID string, input CustomerProfileInput) (*domain.User, error)
}
