package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cleanmatch/marketplace-api/internal/api/metrics"
	"github.com/cleanmatch/marketplace-api/internal/core/domain"
	"github.com/cleanmatch/marketplace-api/internal/core/ports"
)

// AuthService implements registration, login and token revocation.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	versions ports.TokenVersions
	mailer   ports.Mailer
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, versions ports.TokenVersions, mailer ports.Mailer, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, versions: versions, mailer: mailer, logger: logger}
}

// Register creates an account and returns a freshly issued token alongside
// the created user. The email pre-check is advisory only; the unique index on
// users.email is the actual guarantee under concurrent registrations.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Role:            input.Role,
		Name:            input.Name,
		Email:           input.Email,
		PasswordHash:    string(hash),
		ProfileImageURL: input.ProfileImageURL,
		BasePrice:       input.BasePrice,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.issueFor(ctx, created)
	if err != nil {
		return "", nil, err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(created.Role).Inc()
	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")

	if err := s.mailer.SendWelcome(ctx, created.Email, created.Name); err != nil {
		s.logger.Warn().Err(err).Str("user_id", created.ID).Msg("welcome mail failed")
	}

	return token, created, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password deliberately produce the identical error so account existence is
// not leaked.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueFor(ctx, user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

// Logout bumps the caller's token version, invalidating all outstanding
// tokens including the one used for this request.
func (s *AuthService) Logout(ctx context.Context, identity domain.Identity) error {
	if _, err := s.versions.Bump(ctx, identity.UserID); err != nil {
		return err
	}
	metrics.TokensRevokedTotal.Inc()
	s.logger.Info().Str("user_id", identity.UserID).Msg("tokens revoked")
	return nil
}

func (s *AuthService) issueFor(ctx context.Context, user *domain.User) (string, error) {
	ver, err := s.versions.Current(ctx, user.ID)
	if err != nil {
		// The version store is advisory at issuance; a fresh token with
		// version 0 is still checked against the store on each request.
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("token version lookup failed")
		ver = 0
	}

	return s.tokens.Issue(domain.Identity{
		UserID:       user.ID,
		Role:         user.Role,
		Email:        user.Email,
		TokenVersion: ver,
	})
}
