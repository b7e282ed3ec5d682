package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cleanmatch/marketplace-api/internal/api/metrics"
	"github.com/cleanmatch/marketplace-api/internal/core/domain"
	"github.com/cleanmatch/marketplace-api/internal/core/ports"
)

// OfferService implements offer creation and the public offer listings.
type OfferService struct {
	offers ports.OfferRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewOfferService(offers ports.OfferRepository, users ports.UserRepository, logger zerolog.Logger) *OfferService {
	return &OfferService{offers: offers, users: users, logger: logger}
}

// Create persists an offer from customerID to input.CleanerID. The target
// must exist and hold the cleaner role; the customer id is taken from the
// authenticated identity, never from client input.
func (s *OfferService) Create(ctx context.Context, customerID string, input ports.CreateOfferInput) (*domain.Offer, error) {
	cleaner, err := s.users.FindByID(ctx, input.CleanerID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrNotCleaner
		}
		return nil, err
	}
	if cleaner.Role != domain.RoleCleaner {
		return nil, domain.ErrNotCleaner
	}

	offer := &domain.Offer{
		CustomerID: customerID,
		CleanerID:  input.CleanerID,
		Price:      input.Price,
		Note:       input.Note,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.offers.Create(ctx, offer)
	if err != nil {
		s.logger.Error().Err(err).Str("cleaner_id", input.CleanerID).Msg("failed to create offer")
		return nil, err
	}

	metrics.OffersCreatedTotal.Inc()
	s.logger.Info().
		Str("offer_id", created.ID).
		Str("customer_id", customerID).
		Str("cleaner_id", created.CleanerID).
		Int("price", created.Price).
		Msg("offer created")

	return created, nil
}

func (s *OfferService) ListForCleaner(ctx context.Context, cleanerID string) ([]*domain.Offer, error) {
	return s.offers.ListByCleaner(ctx, cleanerID)
}

func (s *OfferService) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Offer, error) {
	return s.offers.ListByCustomer(ctx, customerID)
}
