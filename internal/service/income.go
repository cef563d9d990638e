package service

import (
	"context"
	"fmt"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/game"

	"github.com/shopspring/decimal"
)

// accrueIncome computes what every owned helper earned since the last
// reconciliation. With reconcile the earnings are merged into the pending
// buffer and the player's last-login timestamp advances; without it the
// earnings are only returned, so a pure peek never loses or duplicates
// unaccrued time. Under a minute of elapsed time nothing accrues at all.
func (e *Engine) accrueIncome(ctx context.Context, r *repos, p *domain.Player, reconcile bool) (map[domain.CurrencyID]decimal.Decimal, error) {
	now := e.now()
	view := make(map[domain.CurrencyID]decimal.Decimal)

	stored, err := r.income.All(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	for _, row := range stored {
		view[row.CurrencyID] = view[row.CurrencyID].Add(row.Amount)
	}

	elapsed := now.Sub(p.LastLoginAt)
	if !game.ShouldAccrue(elapsed) {
		return view, nil
	}

	owned, err := r.helpers.Owned(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	earned := make(map[domain.CurrencyID]decimal.Decimal)
	for _, o := range owned {
		h, err := e.cat.Helper(o.HelperID)
		if err != nil {
			return nil, fmt.Errorf("owned helper %s missing from catalog: %w", o.HelperID, err)
		}
		hl, err := e.cat.HelperLevel(o.HelperID, o.Level)
		if err != nil {
			return nil, fmt.Errorf("helper %s level %d missing from catalog: %w", o.HelperID, o.Level, err)
		}
		earned[h.CurrencyID] = earned[h.CurrencyID].Add(game.Accrued(hl.IncomePerHour, elapsed))
	}

	for currency, amount := range earned {
		amount = amount.Round(2)
		if amount.IsZero() {
			continue
		}
		view[currency] = view[currency].Add(amount)
		if reconcile {
			if err := r.income.Merge(ctx, p.UserID, currency, amount, now); err != nil {
				return nil, err
			}
		}
	}
	if reconcile {
		p.LastLoginAt = now
	}
	return view, nil
}

// GetPendingIncome is the read-only inspection: stored pending plus what
// would accrue right now, with nothing persisted.
func (e *Engine) GetPendingIncome(ctx context.Context, userID string) (domain.PendingIncomeView, error) {
	var res domain.PendingIncomeView
	err := e.withPlayer(ctx, userID, func(r *repos, p *domain.Player) ([]domain.Event, error) {
		view, err := e.accrueIncome(ctx, r, p, false)
		if err != nil {
			return nil, err
		}
		res.Currencies = view
		return nil, nil
	})
	return res, err
}

// CollectIncome reconciles accrual and then moves as much pending income
// into the ledger as the storage caps allow, all in one transaction. What
// does not fit stays pending.
func (e *Engine) CollectIncome(ctx context.Context, userID string) (domain.CollectResult, error) {
	var res domain.CollectResult
	err := e.withPlayer(ctx, userID, func(r *repos, p *domain.Player) ([]domain.Event, error) {
		if _, err := e.accrueIncome(ctx, r, p, true); err != nil {
			return nil, err
		}

		pending, err := r.income.All(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
		for _, row := range pending {
			var capacity *decimal.Decimal
			if loc, ok := e.cat.LocationForCurrency(row.CurrencyID); ok {
				c, err := e.storageCapacity(ctx, r, userID, loc)
				if err != nil {
					return nil, err
				}
				capacity = &c
			}

			collected, err := e.credit(ctx, r, userID, row.CurrencyID, row.Amount, capacity)
			if err != nil {
				return nil, err
			}
			if collected.IsPositive() {
				if err := r.income.Reduce(ctx, userID, row.CurrencyID, collected); err != nil {
					return nil, err
				}
			}
			res.Currencies = append(res.Currencies, domain.CollectedCurrency{
				CurrencyID:  row.CurrencyID,
				Collected:   collected,
				Remaining:   row.Amount.Sub(collected),
				StorageFull: collected.LessThan(row.Amount),
			})
		}
		return nil, r.players.Update(ctx, p)
	})
	return res, err
}
