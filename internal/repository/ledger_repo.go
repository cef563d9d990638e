package repository

import (
	"context"
	"errors"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerRepository owns currency_balances rows. Capacity clamping is the
// ledger service's job; this layer only guarantees non-negativity.
type LedgerRepository struct {
	db Querier
}

func NewLedgerRepository(db Querier) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// GetBalance returns the balance, zero for a missing row. Does not create
// the row.
func (r *LedgerRepository) GetBalance(ctx context.Context, userID string, currencyID domain.CurrencyID) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT amount FROM currency_balances WHERE user_id = $1 AND currency_id = $2`,
		userID, currencyID,
	).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return amount, nil
}

// EnsureAccount creates a zero-balance row if absent.
func (r *LedgerRepository) EnsureAccount(ctx context.Context, userID string, currencyID domain.CurrencyID) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO currency_balances (user_id, currency_id, amount)
		VALUES ($1, $2, 0)
		ON CONFLICT (user_id, currency_id) DO NOTHING
	`, userID, currencyID)
	return err
}

// Add applies a non-negative delta and returns the new balance.
func (r *LedgerRepository) Add(ctx context.Context, userID string, currencyID domain.CurrencyID, delta decimal.Decimal) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := r.db.QueryRow(ctx, `
		INSERT INTO currency_balances (user_id, currency_id, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, currency_id)
		DO UPDATE SET amount = currency_balances.amount + EXCLUDED.amount
		RETURNING amount
	`, userID, currencyID, delta).Scan(&amount)
	return amount, err
}

// Debit subtracts amount, guarded in SQL so the balance can never go
// negative. A missing row counts as an empty balance.
func (r *LedgerRepository) Debit(ctx context.Context, userID string, currencyID domain.CurrencyID, amount decimal.Decimal) (decimal.Decimal, error) {
	var remaining decimal.Decimal
	err := r.db.QueryRow(ctx, `
		UPDATE currency_balances
		SET amount = amount - $3
		WHERE user_id = $1 AND currency_id = $2 AND amount >= $3
		RETURNING amount
	`, userID, currencyID, amount).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrInsufficientFunds
		}
		return decimal.Zero, err
	}
	return remaining, nil
}

// Balances returns every balance the player holds.
func (r *LedgerRepository) Balances(ctx context.Context, userID string) (map[domain.CurrencyID]decimal.Decimal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT currency_id, amount FROM currency_balances WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[domain.CurrencyID]decimal.Decimal)
	for rows.Next() {
		var id domain.CurrencyID
		var amount decimal.Decimal
		if err := rows.Scan(&id, &amount); err != nil {
			return nil, err
		}
		out[id] = amount
	}
	return out, rows.Err()
}
