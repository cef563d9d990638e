package repository

import (
	"context"
	"time"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"

	"github.com/shopspring/decimal"
)

// IncomeRepository owns the pending_income accrual buffer.
type IncomeRepository struct {
	db Querier
}

func NewIncomeRepository(db Querier) *IncomeRepository {
	return &IncomeRepository{db: db}
}

func (r *IncomeRepository) All(ctx context.Context, userID string) ([]domain.PendingIncome, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_id, currency_id, amount, updated_at
		FROM pending_income
		WHERE user_id = $1
		ORDER BY currency_id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PendingIncome
	for rows.Next() {
		var p domain.PendingIncome
		if err := rows.Scan(&p.UserID, &p.CurrencyID, &p.Amount, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Merge adds earned income into the buffer; existing pending is kept, never
// overwritten.
func (r *IncomeRepository) Merge(ctx context.Context, userID string, currencyID domain.CurrencyID, earned decimal.Decimal, now time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO pending_income (user_id, currency_id, amount, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, currency_id)
		DO UPDATE SET amount = pending_income.amount + EXCLUDED.amount, updated_at = EXCLUDED.updated_at
	`, userID, currencyID, earned, now)
	return err
}

// Reduce subtracts a collected amount and removes the row once drained.
func (r *IncomeRepository) Reduce(ctx context.Context, userID string, currencyID domain.CurrencyID, collected decimal.Decimal) error {
	_, err := r.db.Exec(ctx, `
		UPDATE pending_income
		SET amount = amount - $3
		WHERE user_id = $1 AND currency_id = $2
	`, userID, currencyID, collected)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		DELETE FROM pending_income
		WHERE user_id = $1 AND currency_id = $2 AND amount <= 0
	`, userID, currencyID)
	return err
}
