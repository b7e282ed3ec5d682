package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cleanmatch/marketplace-api/internal/core/domain"
	"github.com/cleanmatch/marketplace-api/internal/core/ports"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	model := toUserModel(user)

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		// The advisory pre-check in the service can race; the unique
		// index is the real guarantee.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return toUserEntity(&model), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var model userModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return toUserEntity(&model), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var model userModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return toUserEntity(&model), nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, upd ports.ProfileUpdate) (*domain.User, error) {
	var model userModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if upd.City != nil {
		model.City = upd.City
	}
	if upd.District != nil {
		model.District = upd.District
	}
	if upd.Street != nil {
		model.Street = upd.Street
	}
	if upd.Phone != nil {
		model.Phone = upd.Phone
	}
	if upd.Gender != nil {
		model.Gender = upd.Gender
	}
	if upd.Regions != nil {
		model.RegionsJSON = marshalRegions(upd.Regions)
	}
	if upd.ProfileImageURL != nil {
		model.ProfileImageURL = upd.ProfileImageURL
	}
	if upd.BasePrice != nil {
		model.BasePrice = upd.BasePrice
	}
	model.UpdatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		// Email never changes here, so a duplicate key can only be phone.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrPhoneTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return toUserEntity(&model), nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]*domain.User, error) {
	var models []userModel
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]*domain.User, len(models))
	for i := range models {
		users[i] = toUserEntity(&models[i])
	}
	return users, nil
}
