package service

import (
	"context"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/game"
)

// playerStats assembles the snapshot achievement predicates run against,
// all read inside the player's transaction.
func (e *Engine) playerStats(ctx context.Context, r *repos, p *domain.Player) (game.PlayerStats, error) {
	helpers, err := r.helpers.Count(ctx, p.UserID)
	if err != nil {
		return game.PlayerStats{}, err
	}
	maxStorage, err := r.storage.MaxLevel(ctx, p.UserID)
	if err != nil {
		return game.PlayerStats{}, err
	}

	daysInactive := 0
	if gap := e.now().Sub(p.LastLoginAt); gap > 0 {
		daysInactive = int(gap.Hours() / 24)
	}

	return game.PlayerStats{
		Level:           p.Level,
		RankID:          p.RankID,
		SeasonsPlayed:   p.SeasonsPlayed,
		LoginStreak:     p.LoginStreak,
		DaysInactive:    daysInactive,
		TotalTaps:       p.TotalTaps,
		HelpersOwned:    helpers,
		MaxStorageLevel: maxStorage,
	}, nil
}

// scanAchievements grants every not-yet-held achievement whose predicate
// holds. The insert is the idempotency point: only the transaction that wins
// the unique constraint applies the reward and emits the event, so a
// concurrent rescan can never double-grant.
func (e *Engine) scanAchievements(ctx context.Context, r *repos, p *domain.Player) ([]domain.Event, error) {
	stats, err := e.playerStats(ctx, r, p)
	if err != nil {
		return nil, err
	}
	held, err := r.achievements.GrantedIDs(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	var events []domain.Event
	for _, a := range e.cat.Achievements() {
		if _, ok := held[a.ID]; ok {
			continue
		}
		if !game.ConditionMet(a, stats) {
			continue
		}
		inserted, err := r.achievements.Insert(ctx, p.UserID, a.ID, e.now())
		if err != nil {
			return nil, err
		}
		if !inserted {
			continue
		}
		achievementsTotal.Inc()
		if a.RewardMain.IsPositive() {
			if _, err := e.credit(ctx, r, p.UserID, domain.MainCurrency, a.RewardMain, nil); err != nil {
				return nil, err
			}
		}
		events = append(events, domain.Event{
			Kind:          domain.EventAchievementGranted,
			UserID:        p.UserID,
			AchievementID: a.ID,
			At:            e.now(),
		})
	}
	return events, nil
}

// CheckAchievements runs a full scan and returns the ids granted this call.
// Calling it twice with no state change in between grants nothing the
// second time.
func (e *Engine) CheckAchievements(ctx context.Context, userID string) ([]string, error) {
	var granted []string
	err := e.withPlayer(ctx, userID, func(r *repos, p *domain.Player) ([]domain.Event, error) {
		events, err := e.scanAchievements(ctx, r, p)
		if err != nil {
			return nil, err
		}
		for _, ev := range events {
			granted = append(granted, ev.AchievementID)
		}
		return events, nil
	})
	return granted, err
}
