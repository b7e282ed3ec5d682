package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already used")
	ErrPhoneTaken         = errors.New("phone already used")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotCleaner         = errors.New("invalid cleaner id")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")
)
