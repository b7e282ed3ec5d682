package domain

import "time"

// Offer is a priced proposal from a customer to a specific cleaner.
// Offers are immutable once created.
type Offer struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	CleanerID  string    `json:"cleanerId"`
	Price      int       `json:"price"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
