package chirp

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("chirp not found")

// Sort order for listings. Ascending by creation time is the default.
type Sort string

const (
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

type Repo interface {
	Create(ctx context.Context, c *Chirp) error
	GetByID(ctx context.Context, id uuid.UUID) (*Chirp, error)

	// List returns all chirps ordered by creation time, optionally
	// restricted to a single author.
	List(ctx context.Context, authorID *uuid.UUID, order Sort) ([]*Chirp, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
