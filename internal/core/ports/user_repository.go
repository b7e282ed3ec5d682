package ports

import (
	"context"

	"github.com/cleanmatch/marketplace-api/internal/core/domain"
)

// ProfileUpdate carries a partial profile mutation. Nil pointer fields are
// left untouched; a nil Regions slice leaves the stored regions unchanged.
type ProfileUpdate struct {
	City            *string
	District        *string
	Street          *string
	Phone           *string
	Gender          *string
	Regions         []string
	ProfileImageURL *string
	BasePrice       *int
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrEmailTaken when the
	// email unique constraint is violated.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile applies upd to the user's own row and returns the
	// updated record. Returns domain.ErrPhoneTaken when the phone unique
	// constraint is violated.
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*domain.User, error)
	// ListByRole returns all users with the given role, newest first.
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
}
