package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cleanmatch/marketplace-api/internal/core/domain"
	"github.com/cleanmatch/marketplace-api/internal/core/ports"
)

// ProfileService implements profile reads and role-scoped updates. The user
// id always comes from the authenticated identity, so an update can never
// touch another user's row.
type ProfileService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewProfileService(users ports.UserRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, logger: logger}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *ProfileService) UpdateCleaner(ctx context.Context, userID string, input ports.CleanerProfileInput) (*domain.User, error) {
	upd := ports.ProfileUpdate{
		City:     &input.City,
		District: &input.District,
		Gender:   &input.Gender,
		Regions:  input.Regions,
	}
	if input.BasePrice != nil {
		upd.BasePrice = input.BasePrice
	}
	if input.ProfileImageURL != "" {
		upd.ProfileImageURL = &input.ProfileImageURL
	}
	if input.Phone != "" {
		upd.Phone = &input.Phone
	}

	updated, err := s.users.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("cleaner profile updated")
	return updated, nil
}

func (s *ProfileService) UpdateCustomer(ctx context.Context, userID string, input ports.CustomerProfileInput) (*domain.User, error) {
	upd := ports.ProfileUpdate{
		City:     &input.City,
		District: &input.District,
		Street:   &input.Street,
	}
	if input.Phone != "" {
		upd.Phone = &input.Phone
	}
	if input.ProfileImageURL != "" {
		upd.ProfileImageURL = &input.ProfileImageURL
	}

	updated, err := s.users.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("customer profile updated")
	return updated, nil
}
