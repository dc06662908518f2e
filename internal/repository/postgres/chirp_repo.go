package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/chirpnest/chirpy/internal/domain/chirp"
)

var _ chirp.Repo = (*ChirpRepo)(nil)

type ChirpRepo struct {
	db *DB
}

func NewChirpRepo(db *DB) *ChirpRepo { return &ChirpRepo{db: db} }

const (
	qChirpInsert = `
INSERT INTO chirps (body, user_id)
VALUES ($1, $2)
RETURNING id, body, user_id, created_at, updated_at;`

	qChirpByID = `
SELECT id, body, user_id, created_at, updated_at
FROM chirps
WHERE id = $1;`

	qChirpListAsc = `
SELECT id, body, user_id, created_at, updated_at
FROM chirps
WHERE ($1::uuid IS NULL OR user_id = $1)
ORDER BY created_at ASC;`

	qChirpListDesc = `
SELECT id, body, user_id, created_at, updated_at
FROM chirps
WHERE ($1::uuid IS NULL OR user_id = $1)
ORDER BY created_at DESC;`

	qChirpDelete = `DELETE FROM chirps WHERE id = $1;`
)

func scanChirp(row pgx.Row, c *chirp.Chirp) error {
	if err := row.Scan(&c.ID, &c.Body, &c.UserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return chirp.ErrNotFound
		}
		return fmt.Errorf("scan chirp: %w", err)
	}
	return nil
}

func (r *ChirpRepo) Create(ctx context.Context, c *chirp.Chirp) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	return scanChirp(r.db.Pool.QueryRow(ctx, qChirpInsert, c.Body, c.UserID), c)
}

func (r *ChirpRepo) GetByID(ctx context.Context, id uuid.UUID) (*chirp.Chirp, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var c chirp.Chirp
	if err := scanChirp(r.db.Pool.QueryRow(ctx, qChirpByID, id), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChirpRepo) List(ctx context.Context, authorID *uuid.UUID, order chirp.Sort) ([]*chirp.Chirp, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	q := qChirpListAsc
	if order == chirp.SortDesc {
		q = qChirpListDesc
	}

	rows, err := r.db.Pool.Query(ctx, q, authorID)
	if err != nil {
		return nil, fmt.Errorf("query chirps: %w", err)
	}
	defer rows.Close()

	var out []*chirp.Chirp
	for rows.Next() {
		var c chirp.Chirp
		if err := rows.Scan(&c.ID, &c.Body, &c.UserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan chirp: %w", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chirps: %w", err)
	}
	return out, nil
}

func (r *ChirpRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Pool.Exec(ctx, qChirpDelete, id)
	if err != nil {
		return fmt.Errorf("chirp delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return chirp.ErrNotFound
	}
	return nil
}
