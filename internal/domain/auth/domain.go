package auth

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is the persisted side of a session: an opaque random string
// used as the primary key, owned by a user, with a fixed expiry window and
// a one-way revocation mark.
type RefreshToken struct {
	Token     string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time // nil while the token is still usable
}

// Live reports whether the token can still mint access tokens at now.
func (t *RefreshToken) Live(now time.Time) bool {
	return t.RevokedAt == nil && t.ExpiresAt.After(now)
}
