package service

import (
	"context"
	"fmt"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/game"

	"github.com/shopspring/decimal"
)

// credit adds delta to a balance. With a capacity only the space that is
// left gets credited (possibly nothing); the caller sees the shortfall and
// reports storage-full. delta must be non-negative, a negative delta is an
// engine bug, not a rejected operation.
func (e *Engine) credit(ctx context.Context, r *repos, userID string, currencyID domain.CurrencyID, delta decimal.Decimal, capacity *decimal.Decimal) (decimal.Decimal, error) {
	if _, err := e.cat.Currency(currencyID); err != nil {
		return decimal.Zero, fmt.Errorf("currency %s: %w", currencyID, domain.ErrNotFound)
	}
	if delta.IsNegative() {
		return decimal.Zero, fmt.Errorf("credit of %s to %s: negative delta", delta, currencyID)
	}
	if delta.IsZero() {
		return decimal.Zero, nil
	}

	credited := delta
	if capacity != nil {
		balance, err := r.ledger.GetBalance(ctx, userID, currencyID)
		if err != nil {
			return decimal.Zero, err
		}
		credited = game.ClampCredit(balance, delta, *capacity)
		if credited.LessThan(delta) {
			storageFullTotal.Inc()
		}
		if credited.IsZero() {
			return decimal.Zero, nil
		}
	}
	if _, err := r.ledger.Add(ctx, userID, currencyID, credited); err != nil {
		return decimal.Zero, err
	}
	return credited, nil
}

// debit takes amount from a balance; domain.ErrInsufficientFunds when the
// player cannot pay, with nothing mutated.
func (e *Engine) debit(ctx context.Context, r *repos, userID string, currencyID domain.CurrencyID, amount decimal.Decimal) error {
	if _, err := e.cat.Currency(currencyID); err != nil {
		return fmt.Errorf("currency %s: %w", currencyID, domain.ErrNotFound)
	}
	if amount.IsZero() {
		return nil
	}
	_, err := r.ledger.Debit(ctx, userID, currencyID, amount)
	return err
}

// storageCapacity resolves the cap for a location's currency: the player's
// storage row if one exists, the location's level-1 storage otherwise.
func (e *Engine) storageCapacity(ctx context.Context, r *repos, userID string, loc domain.Location) (decimal.Decimal, error) {
	limit, err := r.storage.Get(ctx, userID, loc.ID)
	if err != nil {
		return decimal.Zero, err
	}
	if limit != nil {
		return limit.Capacity, nil
	}
	sl, err := e.cat.StorageLevel(loc.ID, 1)
	if err != nil {
		return decimal.Zero, fmt.Errorf("location %s has no storage table: %w", loc.ID, err)
	}
	return sl.Capacity, nil
}
