package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/chirpnest/chirpy/internal/domain/auth"
	"github.com/chirpnest/chirpy/internal/domain/user"
)

var (
	// ErrInvalidCredentials deliberately hides which of email or password
	// was wrong.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrWeakPassword       = errors.New("password is too weak")
	ErrValidation         = errors.New("email and password are required")
)

type Config struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Now        func() time.Time
}

// Usecase is the session authenticator: it composes the password hasher,
// the access-token signer, and the refresh-token store behind the user and
// refresh-token ports. It holds no state of its own between calls.
type Usecase struct {
	users user.Repo
	rt    domainauth.RefreshTokenRepo
	cfg   Config
}

func NewUsecase(users user.Repo, rt domainauth.RefreshTokenRepo, cfg Config) *Usecase {
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = time.Hour
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 60 * 24 * time.Hour
	}
	return &Usecase{users: users, rt: rt, cfg: cfg}
}

// Emails are stored case-sensitively; only surrounding whitespace is dropped.
func normalizeEmail(s string) string { return strings.TrimSpace(s) }

func (u *Usecase) Register(ctx context.Context, email, password string) (*user.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrValidation
	}
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := u.cfg.Now()
	newUser := &user.User{Email: email, HashedPassword: hash, CreatedAt: now, UpdatedAt: now}
	if err := u.users.Create(ctx, newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}

// Login verifies the email/password pair and, on success, returns the user
// together with a fresh access token and a persisted refresh token.
func (u *Usecase) Login(ctx context.Context, email, password string) (*user.User, string, string, error) {
	rec, err := u.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", fmt.Errorf("look up user: %w", err)
	}
	if !CheckPassword(password, rec.HashedPassword) {
		return nil, "", "", ErrInvalidCredentials
	}
	access, refresh, err := u.issueTokens(ctx, rec.ID)
	if err != nil {
		return nil, "", "", err
	}
	return rec, access, refresh, nil
}

// Refresh mints a new access token for the owner of a live refresh token.
// The refresh token is not rotated: it stays valid until it is revoked or
// naturally expires.
func (u *Usecase) Refresh(ctx context.Context, raw string) (string, error) {
	if raw == "" {
		return "", ErrInvalidToken
	}
	rec, err := u.rt.FindValid(ctx, raw)
	if err != nil {
		return "", ErrInvalidToken
	}
	if !rec.Live(u.cfg.Now()) {
		return "", ErrInvalidToken
	}
	access, err := MakeJWT(rec.UserID, u.cfg.Secret, u.cfg.AccessTTL)
	if err != nil {
		return "", fmt.Errorf("sign access: %w", err)
	}
	return access, nil
}

// Revoke marks a refresh token unusable. It is idempotent and never fails
// on unknown tokens.
func (u *Usecase) Revoke(ctx context.Context, raw string) error {
	if raw == "" {
		return nil
	}
	return u.rt.Revoke(ctx, raw)
}

// Authenticate verifies a bearer access token and returns the user id it
// was issued for.
func (u *Usecase) Authenticate(tokenString string) (uuid.UUID, error) {
	return ValidateJWT(tokenString, u.cfg.Secret)
}

func (u *Usecase) UpdateCredentials(ctx context.Context, userID uuid.UUID, email, password string) (*user.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrValidation
	}
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}
	rec, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	rec.Email = email
	rec.HashedPassword = hash
	rec.UpdatedAt = u.cfg.Now()
	if err := u.users.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *Usecase) issueTokens(ctx context.Context, userID uuid.UUID) (string, string, error) {
	access, err := MakeJWT(userID, u.cfg.Secret, u.cfg.AccessTTL)
	if err != nil {
		return "", "", fmt.Errorf("sign access: %w", err)
	}
	raw, err := MakeRefreshToken()
	if err != nil {
		return "", "", fmt.Errorf("gen refresh: %w", err)
	}
	now := u.cfg.Now()
	rec := &domainauth.RefreshToken{
		Token:     raw,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(u.cfg.RefreshTTL),
	}
	if err := u.rt.Create(ctx, rec); err != nil {
		return "", "", fmt.Errorf("save refresh: %w", err)
	}
	return access, raw, nil
}
