package repository

import (
	"context"
	"errors"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"

	"github.com/jackc/pgx/v5"
)

type SeasonRepository struct {
	db Querier
}

func NewSeasonRepository(db Querier) *SeasonRepository {
	return &SeasonRepository{db: db}
}

// Standing returns the player's standing in a season, or nil when the
// player has not yet scored in it.
func (r *SeasonRepository) Standing(ctx context.Context, userID, seasonID string) (*domain.SeasonStanding, error) {
	var s domain.SeasonStanding
	err := r.db.QueryRow(ctx, `
		SELECT user_id, season_id, points, rank_id, highest_rank_id
		FROM season_standings
		WHERE user_id = $1 AND season_id = $2
	`, userID, seasonID).Scan(&s.UserID, &s.SeasonID, &s.Points, &s.RankID, &s.HighestRankID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SeasonRepository) Upsert(ctx context.Context, s *domain.SeasonStanding) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO season_standings (user_id, season_id, points, rank_id, highest_rank_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, season_id)
		DO UPDATE SET points = EXCLUDED.points, rank_id = EXCLUDED.rank_id,
			highest_rank_id = EXCLUDED.highest_rank_id
	`, s.UserID, s.SeasonID, s.Points, s.RankID, s.HighestRankID)
	return err
}

// SeasonsPlayed counts the seasons the player has a standing in.
func (r *SeasonRepository) SeasonsPlayed(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM season_standings WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}
