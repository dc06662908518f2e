package auth

import (
	"context"
	"errors"
)

// ErrTokenNotFound covers absent, expired, and revoked tokens alike;
// callers cannot tell the three apart.
var ErrTokenNotFound = errors.New("refresh token not found")

type RefreshTokenRepo interface {
	Create(ctx context.Context, t *RefreshToken) error

	// FindValid returns the token row only when it exists, is not revoked,
	// and has not expired. Everything else is ErrTokenNotFound.
	FindValid(ctx context.Context, token string) (*RefreshToken, error)

	// Revoke stamps revoked_at on a live row. Revoking an already-revoked
	// or unknown token is a no-op, not an error.
	Revoke(ctx context.Context, token string) error
}
