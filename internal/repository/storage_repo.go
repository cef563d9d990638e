package repository

import (
	"context"
	"errors"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// StorageRepository owns per-player storage limits for location currencies.
// A missing row means the player is still on the location's level-1 storage.
type StorageRepository struct {
	db Querier
}

func NewStorageRepository(db Querier) *StorageRepository {
	return &StorageRepository{db: db}
}

func (r *StorageRepository) Get(ctx context.Context, userID, locationID string) (*domain.StorageLimit, error) {
	var s domain.StorageLimit
	err := r.db.QueryRow(ctx, `
		SELECT user_id, location_id, currency_id, level, capacity
		FROM storage_limits
		WHERE user_id = $1 AND location_id = $2
	`, userID, locationID).Scan(&s.UserID, &s.LocationID, &s.CurrencyID, &s.Level, &s.Capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *StorageRepository) Upsert(ctx context.Context, userID, locationID string, currencyID domain.CurrencyID, level int, capacity decimal.Decimal) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO storage_limits (user_id, location_id, currency_id, level, capacity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, location_id)
		DO UPDATE SET currency_id = EXCLUDED.currency_id, level = EXCLUDED.level, capacity = EXCLUDED.capacity
	`, userID, locationID, currencyID, level, capacity)
	return err
}

// MaxLevel is the highest storage level the player has bought anywhere;
// feeds the max_storage_level achievement predicate.
func (r *StorageRepository) MaxLevel(ctx context.Context, userID string) (int, error) {
	var level int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(MAX(level), 1) FROM storage_limits WHERE user_id = $1`, userID).Scan(&level)
	return level, err
}
