package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

type Repo interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	UpgradeToChirpyRed(ctx context.Context, id uuid.UUID) error

	// DeleteAll wipes every user row. Used only by the dev-mode reset.
	DeleteAll(ctx context.Context) error
}
