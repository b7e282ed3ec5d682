package ports

import (
	"context"

	"github.com/cleanmatch/marketplace-api/internal/core/domain"
)

// CreateOfferInput carries the offer creation payload. The customer id is
// never part of the input; it is taken from the authenticated identity.
type CreateOfferInput struct {
	CleanerID string
	Price     int
	Note      string
}

// OfferService implements offer creation and the public offer listings.
type OfferService interface {
	// Create persists an offer from customerID to input.CleanerID.
	// Fails with domain.ErrNotCleaner when the target is missing or is
	// not a cleaner.
	Create(ctx context.Context, customerID string, input CreateOfferInput) (*domain.Offer, error)
	ListForCleaner(ctx context.Context, cleanerID string) ([]*domain.Offer, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Offer, error)
}
