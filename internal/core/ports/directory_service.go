package ports

import (
	"context"
	"time"
)

// CleanerSummary is the public listing view of a cleaner.
type CleanerSummary struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	BasePrice       *int      `json:"basePrice,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CustomerSummary is the public listing view of a customer.
type CustomerSummary struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// GroupedUsers is the combined directory payload.
type GroupedUsers struct {
	Cleaners  []CleanerSummary  `json:"cleaners"`
	Customers []CustomerSummary `json:"customers"`
}

// DirectoryService serves the public user listings, newest first.
type DirectoryService interface {
	Cleaners(ctx context.Context) ([]CleanerSummary, error)
	Customers(ctx context.Context) ([]CustomerSummary, error)
	Grouped(ctx context.Context) (*GroupedUsers, error)
}

// DirectoryCache is a TTL cache for rendered directory listings.
type DirectoryCache interface {
	// Get returns the cached payload for key; ok is false on a miss.
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	Set(ctx context.Context, key string, payload []byte) error
}
