package domain

import "time"

const (
	RoleCustomer = "customer"
	RoleCleaner  = "cleaner"
)

const (
	GenderFemale = "female"
	GenderMale   = "male"
	GenderOther  = "other"
)

// ValidRole reports whether role is one of the two marketplace roles.
func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleCleaner
}

// User models an account on either side of the marketplace. Role is fixed at
// registration; the remaining profile fields are filled in later through the
// role-specific profile endpoints.
type User struct {
	ID              string    `json:"id"`
	Role            string    `json:"role"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Phone           string    `json:"phone,omitempty"`
	City            string    `json:"city,omitempty"`
	District        string    `json:"district,omitempty"`
	Street          string    `json:"street,omitempty"`
	Gender          string    `json:"gender,omitempty"`
	Regions         []string  `json:"regions,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	BasePrice       *int      `json:"basePrice,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Identity is the authenticated caller attached to a request by the auth
// middleware. It mirrors the token claims, not the current database row.
type Identity struct {
	UserID       string
	Role         string
	Email        string
	TokenVersion int64
}
