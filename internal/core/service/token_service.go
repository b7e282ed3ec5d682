package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cleanmatch/marketplace-api/internal/core/domain"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// TokenService issues and verifies HS256 session tokens. Tokens are
// stateless; the only server-side state is the per-user version counter
// checked separately by the auth middleware.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token carrying {sub, role, email, ver, exp}.
func (s *TokenService) Issue(identity domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   identity.UserID,
		"role":  identity.Role,
		"email": identity.Email,
		"ver":   identity.TokenVersion,
		"exp":   time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and decodes the identity. Expired,
// malformed and badly signed tokens are not distinguished to the caller;
// all fail with domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || !domain.ValidRole(role) {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	// JSON numbers decode as float64.
	ver, _ := claims["ver"].(float64)

	return domain.Identity{
		UserID:       sub,
		Role:         role,
		Email:        email,
		TokenVersion: int64(ver),
	}, nil
}
