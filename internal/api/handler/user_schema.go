package handler

import (
	"time"

	"github.com/cleanmatch/marketplace-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// userResponse is the sanitized user view returned by auth and profile
// endpoints. The password hash is never part of any response.
type userResponse struct {
	ID              string    `json:"id"`
	Role            string    `json:"role"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	City            string    `json:"city,omitempty"`
	District        string    `json:"district,omitempty"`
	Street          string    `json:"street,omitempty"`
	Gender          string    `json:"gender,omitempty"`
	Regions         []string  `json:"regions,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	BasePrice       *int      `json:"basePrice,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:              u.ID,
		Role:            u.Role,
		Name:            u.Name,
		Email:           u.Email,
		Phone:           u.Phone,
		City:            u.City,
		District:        u.District,
		Street:          u.Street,
		Gender:          u.Gender,
		Regions:         u.Regions,
		ProfileImageURL: u.ProfileImageURL,
		BasePrice:       u.BasePrice,
		CreatedAt:       u.CreatedAt.UTC(),
	}
}
