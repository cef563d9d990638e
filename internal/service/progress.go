package service

import (
	"context"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"

	"github.com/shopspring/decimal"
)

func dayIndex(unix int64) int64 { return unix / 86400 }

// updateLoginStreak advances the consecutive-day login counter. Must run
// before accrual reconciles last_login_at, which is the previous visit
// marker it compares against.
func (e *Engine) updateLoginStreak(p *domain.Player) {
	today := dayIndex(e.now().UTC().Unix())
	last := dayIndex(p.LastLoginAt.UTC().Unix())
	switch {
	case today == last:
		// second visit today, streak unchanged
	case today == last+1:
		p.LoginStreak++
	default:
		p.LoginStreak = 1
	}
}

// GetProgress is the login touchpoint: refill energy, reconcile idle
// income, advance the login streak, rescan achievements, and return the
// full player view.
func (e *Engine) GetProgress(ctx context.Context, userID string) (domain.ProgressSnapshot, error) {
	var snap domain.ProgressSnapshot
	err := e.withPlayer(ctx, userID, func(r *repos, p *domain.Player) ([]domain.Event, error) {
		e.refillEnergy(p)
		e.updateLoginStreak(p)

		// scan before accrual reconciles last_login_at so inactivity
		// conditions still see the previous visit
		events, err := e.scanAchievements(ctx, r, p)
		if err != nil {
			return nil, err
		}
		if _, err := e.accrueIncome(ctx, r, p, true); err != nil {
			return nil, err
		}

		balances, err := r.ledger.Balances(ctx, userID)
		if err != nil {
			return nil, err
		}
		pending, err := r.income.All(ctx, userID)
		if err != nil {
			return nil, err
		}
		tools, err := r.tools.Owned(ctx, userID)
		if err != nil {
			return nil, err
		}
		helpers, err := r.helpers.Owned(ctx, userID)
		if err != nil {
			return nil, err
		}
		locations, err := r.unlocks.Locations(ctx, userID)
		if err != nil {
			return nil, err
		}
		grants, err := r.achievements.List(ctx, userID)
		if err != nil {
			return nil, err
		}

		pendingMap := make(map[domain.CurrencyID]decimal.Decimal, len(pending))
		for _, row := range pending {
			pendingMap[row.CurrencyID] = row.Amount
		}
		snap = domain.ProgressSnapshot{
			Player:        *p,
			Balances:      balances,
			PendingIncome: pendingMap,
			Tools:         tools,
			Helpers:       helpers,
			Locations:     locations,
			Achievements:  grants,
		}
		return events, r.players.Update(ctx, p)
	})
	return snap, err
}
