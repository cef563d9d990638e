package repository

import (
	"context"
	"errors"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"

	"github.com/jackc/pgx/v5"
)

type HelperRepository struct {
	db Querier
}

func NewHelperRepository(db Querier) *HelperRepository {
	return &HelperRepository{db: db}
}

func (r *HelperRepository) Owned(ctx context.Context, userID string) ([]domain.HelperOwnership, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_id, helper_id, level
		FROM player_helpers
		WHERE user_id = $1
		ORDER BY helper_id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HelperOwnership
	for rows.Next() {
		var h domain.HelperOwnership
		if err := rows.Scan(&h.UserID, &h.HelperID, &h.Level); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *HelperRepository) Get(ctx context.Context, userID, helperID string) (*domain.HelperOwnership, error) {
	var h domain.HelperOwnership
	err := r.db.QueryRow(ctx, `
		SELECT user_id, helper_id, level
		FROM player_helpers
		WHERE user_id = $1 AND helper_id = $2
	`, userID, helperID).Scan(&h.UserID, &h.HelperID, &h.Level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

// Insert hires a helper at level 1. Idempotent; returns true when new.
func (r *HelperRepository) Insert(ctx context.Context, userID, helperID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO player_helpers (user_id, helper_id, level)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, helper_id) DO NOTHING
	`, userID, helperID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *HelperRepository) SetLevel(ctx context.Context, userID, helperID string, level int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE player_helpers SET level = $3 WHERE user_id = $1 AND helper_id = $2`,
		userID, helperID, level)
	return err
}

func (r *HelperRepository) Count(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM player_helpers WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}
