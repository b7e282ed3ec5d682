package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cleanmatch/marketplace-api/internal/core/domain"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, offer *domain.Offer) (*domain.Offer, error) {
	model := toOfferModel(offer)

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, fmt.Errorf("insert offer: %w", err)
	}

	return toOfferEntity(&model), nil
}

func (r *OfferRepository) ListByCleaner(ctx context.Context, cleanerID string) ([]*domain.Offer, error) {
	return r.list(ctx, "cleaner_id = ?", cleanerID)
}

func (r *OfferRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Offer, error) {
	return r.list(ctx, "customer_id = ?", customerID)
}

func (r *OfferRepository) list(ctx context.Context, cond string, arg string) ([]*domain.Offer, error) {
	var models []offerModel
	err := r.db.WithContext(ctx).
		Where(cond, arg).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}

	offers := make([]*domain.Offer, len(models))
	for i := range models {
		offers[i] = toOfferEntity(&models[i])
	}
	return offers, nil
}
