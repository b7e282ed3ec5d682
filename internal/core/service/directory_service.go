package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/cleanmatch/marketplace-api/internal/api/metrics"
	"github.com/cleanmatch/marketplace-api/internal/core/domain"
	"github.com/cleanmatch/marketplace-api/internal/core/ports"
)

const (
	cacheKeyCleaners  = "cleaners"
	cacheKeyCustomers = "customers"
)

// DirectoryService serves the public user listings with a cache-aside layer.
// The cache is best effort: a cache failure falls through to the database.
type DirectoryService struct {
	users  ports.UserRepository
	cache  ports.DirectoryCache
	logger zerolog.Logger
}

func NewDirectoryService(users ports.UserRepository, cache ports.DirectoryCache, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{users: users, cache: cache, logger: logger}
}

func (s *DirectoryService) Cleaners(ctx context.Context) ([]ports.CleanerSummary, error) {
	var cached []ports.CleanerSummary
	if s.cacheGet(ctx, cacheKeyCleaners, &cached) {
		return cached, nil
	}

	users, err := s.users.ListByRole(ctx, domain.RoleCleaner)
	if err != nil {
		return nil, err
	}

	out := make([]ports.CleanerSummary, len(users))
	for i, u := range users {
		out[i] = ports.CleanerSummary{
			ID:              u.ID,
			Name:            u.Name,
			ProfileImageURL: u.ProfileImageURL,
			BasePrice:       u.BasePrice,
			CreatedAt:       u.CreatedAt,
		}
	}

	s.cacheSet(ctx, cacheKeyCleaners, out)
	return out, nil
}

func (s *DirectoryService) Customers(ctx context.Context) ([]ports.CustomerSummary, error) {
	var cached []ports.CustomerSummary
	if s.cacheGet(ctx, cacheKeyCustomers, &cached) {
		return cached, nil
	}

	users, err := s.users.ListByRole(ctx, domain.RoleCustomer)
	if err != nil {
		return nil, err
	}

	out := make([]ports.CustomerSummary, len(users))
	for i, u := range users {
		out[i] = ports.CustomerSummary{
			ID:              u.ID,
			Name:            u.Name,
			Email:           u.Email,
			ProfileImageURL: u.ProfileImageURL,
			CreatedAt:       u.CreatedAt,
		}
	}

	s.cacheSet(ctx, cacheKeyCustomers, out)
	return out, nil
}

func (s *DirectoryService) Grouped(ctx context.Context) (*ports.GroupedUsers, error) {
	cleaners, err := s.Cleaners(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.Customers(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.GroupedUsers{Cleaners: cleaners, Customers: customers}, nil
}

func (s *DirectoryService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	payload, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("directory cache read failed")
		return false
	}
	if !ok {
		metrics.DirectoryCacheTotal.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("directory cache payload corrupt")
		return false
	}
	metrics.DirectoryCacheTotal.WithLabelValues("hit").Inc()
	return true
}

func (s *DirectoryService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("directory cache write failed")
	}
}
