package repository

import (
	"context"
	"errors"
	"time"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"

	"github.com/jackc/pgx/v5"
)

type PlayerRepository struct {
	db Querier
}

func NewPlayerRepository(db Querier) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const playerColumns = `user_id, level, experience, energy, max_energy,
	last_energy_refill_at, last_login_at, login_streak, rank_id,
	total_taps, total_resources, seasons_played, created_at`

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(
		&p.UserID, &p.Level, &p.Experience, &p.Energy, &p.MaxEnergy,
		&p.LastEnergyRefillAt, &p.LastLoginAt, &p.LoginStreak, &p.RankID,
		&p.TotalTaps, &p.TotalResources, &p.SeasonsPlayed, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Ensure creates the player row with default state if absent. Idempotent;
// returns true when a new player was created.
func (r *PlayerRepository) Ensure(ctx context.Context, userID string, maxEnergy int, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO players (user_id, level, experience, energy, max_energy,
			last_energy_refill_at, last_login_at, login_streak, rank_id,
			total_taps, total_resources, seasons_played, created_at)
		VALUES ($1, 1, 0, $2, $2, $3, $3, 1, 0, 0, 0, 0, $3)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, maxEnergy, now)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// GetForUpdate locks the player row for the duration of the transaction.
// This is the serialization point for all per-player mutations.
func (r *PlayerRepository) GetForUpdate(ctx context.Context, userID string) (*domain.Player, error) {
	return scanPlayer(r.db.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE user_id = $1 FOR UPDATE`, userID))
}

func (r *PlayerRepository) Get(ctx context.Context, userID string) (*domain.Player, error) {
	return scanPlayer(r.db.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE user_id = $1`, userID))
}

// Update persists every mutable field in one statement, so an interrupted
// operation can never leave a half-written cascade behind.
func (r *PlayerRepository) Update(ctx context.Context, p *domain.Player) error {
	_, err := r.db.Exec(ctx, `
		UPDATE players
		SET level = $2, experience = $3, energy = $4, max_energy = $5,
			last_energy_refill_at = $6, last_login_at = $7, login_streak = $8,
			rank_id = $9, total_taps = $10, total_resources = $11, seasons_played = $12
		WHERE user_id = $1
	`, p.UserID, p.Level, p.Experience, p.Energy, p.MaxEnergy,
		p.LastEnergyRefillAt, p.LastLoginAt, p.LoginStreak,
		p.RankID, p.TotalTaps, p.TotalResources, p.SeasonsPlayed)
	return err
}
