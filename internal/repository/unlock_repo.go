package repository

import "context"

// UnlockRepository owns the set of locations a player has opened.
type UnlockRepository struct {
	db Querier
}

func NewUnlockRepository(db Querier) *UnlockRepository {
	return &UnlockRepository{db: db}
}

func (r *UnlockRepository) Locations(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT location_id FROM player_locations WHERE user_id = $1 ORDER BY location_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *UnlockRepository) HasLocation(ctx context.Context, userID, locationID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM player_locations WHERE user_id = $1 AND location_id = $2)
	`, userID, locationID).Scan(&exists)
	return exists, err
}

// UnlockLocation is idempotent; a second grant is a no-op.
func (r *UnlockRepository) UnlockLocation(ctx context.Context, userID, locationID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO player_locations (user_id, location_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, location_id) DO NOTHING
	`, userID, locationID)
	return err
}
