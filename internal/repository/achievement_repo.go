package repository

import (
	"context"
	"time"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"
)

type AchievementRepository struct {
	db Querier
}

func NewAchievementRepository(db Querier) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// Insert records a grant. The unique (user_id, achievement_id) constraint
// makes re-granting a silent no-op, which is what keeps concurrent scans
// idempotent; returns true only for the scan that actually won the insert.
func (r *AchievementRepository) Insert(ctx context.Context, userID, achievementID string, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO achievement_grants (user_id, achievement_id, unlocked_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, achievement_id) DO NOTHING
	`, userID, achievementID, now)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// GrantedIDs returns the set of achievements the player already holds.
func (r *AchievementRepository) GrantedIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	rows, err := r.db.Query(ctx,
		`SELECT achievement_id FROM achievement_grants WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = struct{}{}
	}
	return out, rows.Err()
}

func (r *AchievementRepository) List(ctx context.Context, userID string) ([]domain.AchievementGrant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_id, achievement_id, unlocked_at
		FROM achievement_grants
		WHERE user_id = $1
		ORDER BY unlocked_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AchievementGrant
	for rows.Next() {
		var g domain.AchievementGrant
		if err := rows.Scan(&g.UserID, &g.AchievementID, &g.UnlockedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
