// Package notify sends transactional email through SendGrid. Delivery is
// best effort; callers log failures and move on.
package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/cleanmatch/marketplace-api/internal/core/ports"
)

// NewMailer returns a SendGrid-backed mailer, or a no-op mailer when no API
// key is configured.
func NewMailer(apiKey, from string, logger zerolog.Logger) ports.Mailer {
	if apiKey == "" {
		logger.Info().Msg("sendgrid not configured, welcome mail disabled")
		return NoopMailer{}
	}
	return &SendgridMailer{apiKey: apiKey, from: from, logger: logger}
}

// SendgridMailer sends mail through the SendGrid v3 API.
type SendgridMailer struct {
	apiKey string
	from   string
	logger zerolog.Logger
}

func (m *SendgridMailer) SendWelcome(_ context.Context, email, name string) error {
	from := mail.NewEmail("CleanMatch", m.from)
	to := mail.NewEmail(name, email)
	body := fmt.Sprintf("Hi %s,\n\nWelcome to CleanMatch. Your account is ready.\n", name)
	message := mail.NewSingleEmail(from, "Welcome to CleanMatch", to, body, body)

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d", response.StatusCode)
	}

	m.logger.Debug().Str("email", email).Int("status", response.StatusCode).Msg("welcome mail sent")
	return nil
}

// NoopMailer drops all mail. Used when SendGrid is not configured and in tests.
type NoopMailer struct{}

func (NoopMailer) SendWelcome(context.Context, string, string) error {
	return nil
}
