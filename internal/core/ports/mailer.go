package ports

import "context"

// Mailer sends transactional email. Delivery is best effort; callers must not
// fail a request on a mail error.
type Mailer interface {
	SendWelcome(ctx context.Context, email, name string) error
}
