package chirp

import (
	"time"

	"github.com/google/uuid"
)

// MaxBodyLen is the hard cap on chirp length, in bytes.
const MaxBodyLen = 140

type Chirp struct {
	ID        uuid.UUID `json:"id"`
	Body      string    `json:"body"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
