package ports

import "context"

// TokenVersions tracks a per-user token version counter. Tokens carry the
// version current at issuance; bumping the counter revokes every token issued
// before the bump.
type TokenVersions interface {
	// Current returns the user's version counter; 0 for users that were
	// never bumped.
	Current(ctx context.Context, userID string) (int64, error)
	// Bump increments the counter and returns the new value.
	Bump(ctx context.Context, userID string) (int64, error)
}
