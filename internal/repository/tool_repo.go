package repository

import (
	"context"
	"errors"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"

	"github.com/jackc/pgx/v5"
)

type ToolRepository struct {
	db Querier
}

func NewToolRepository(db Querier) *ToolRepository {
	return &ToolRepository{db: db}
}

func (r *ToolRepository) Owned(ctx context.Context, userID string) ([]domain.ToolOwnership, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_id, tool_id, level, equipped
		FROM player_tools
		WHERE user_id = $1
		ORDER BY tool_id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ToolOwnership
	for rows.Next() {
		var t domain.ToolOwnership
		if err := rows.Scan(&t.UserID, &t.ToolID, &t.Level, &t.Equipped); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *ToolRepository) Get(ctx context.Context, userID, toolID string) (*domain.ToolOwnership, error) {
	var t domain.ToolOwnership
	err := r.db.QueryRow(ctx, `
		SELECT user_id, tool_id, level, equipped
		FROM player_tools
		WHERE user_id = $1 AND tool_id = $2
	`, userID, toolID).Scan(&t.UserID, &t.ToolID, &t.Level, &t.Equipped)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// EquippedForCharacter returns the tool the player taps with at locations of
// the given character, or nil when none is equipped (base stats apply).
func (r *ToolRepository) EquippedForCharacter(ctx context.Context, userID, characterID string) (*domain.ToolOwnership, error) {
	var t domain.ToolOwnership
	err := r.db.QueryRow(ctx, `
		SELECT user_id, tool_id, level, equipped
		FROM player_tools
		WHERE user_id = $1 AND character_id = $2 AND equipped
	`, userID, characterID).Scan(&t.UserID, &t.ToolID, &t.Level, &t.Equipped)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// Insert grants a tool at level 1. Idempotent; returns true when the grant
// was new.
func (r *ToolRepository) Insert(ctx context.Context, userID, toolID, characterID string, equipped bool) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO player_tools (user_id, tool_id, character_id, level, equipped)
		VALUES ($1, $2, $3, 1, $4)
		ON CONFLICT (user_id, tool_id) DO NOTHING
	`, userID, toolID, characterID, equipped)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ToolRepository) SetLevel(ctx context.Context, userID, toolID string, level int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE player_tools SET level = $3 WHERE user_id = $1 AND tool_id = $2`,
		userID, toolID, level)
	return err
}

// Equip makes toolID the equipped tool for its character, unequipping any
// other tool of the same character first.
func (r *ToolRepository) Equip(ctx context.Context, userID, toolID, characterID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE player_tools SET equipped = false
		WHERE user_id = $1 AND character_id = $2 AND equipped
	`, userID, characterID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		UPDATE player_tools SET equipped = true
		WHERE user_id = $1 AND tool_id = $2
	`, userID, toolID)
	return err
}

// HasEquippedForCharacter reports whether any tool is equipped for the
// character.
func (r *ToolRepository) HasEquippedForCharacter(ctx context.Context, userID, characterID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM player_tools
			WHERE user_id = $1 AND character_id = $2 AND equipped
		)
	`, userID, characterID).Scan(&exists)
	return exists, err
}
