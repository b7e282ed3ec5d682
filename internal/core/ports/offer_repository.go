package ports

import (
	"context"

	"github.com/cleanmatch/marketplace-api/internal/core/domain"
)

// OfferRepository defines persistence operations for offers.
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error)
	// ListByCleaner returns offers received by a cleaner, newest first.
	ListByCleaner(ctx context.Context, cleanerID string) ([]*domain.Offer, error)
	// ListByCustomer returns offers sent by a customer, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Offer, error)
}
