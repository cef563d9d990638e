package service

import (
	"context"
	"fmt"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/game"
)

// applyExperience runs the leveling cascade on the locked player: add the
// delta, walk the ladder, apply every reward of every level gained. The
// player struct is mutated in memory; the caller persists it once at the
// end of the operation.
func (e *Engine) applyExperience(ctx context.Context, r *repos, p *domain.Player, delta int64) (domain.LevelResult, []domain.Event, error) {
	newLevel, newExp, gained := game.Advance(p.Level, p.Experience, delta, e.cat.ExpToNext)

	var rewards []domain.Reward
	for _, lvl := range gained {
		rewards = append(rewards, e.cat.LevelRewards(lvl)...)
	}
	for _, rw := range rewards {
		if err := e.applyReward(ctx, r, p, rw); err != nil {
			return domain.LevelResult{}, nil, err
		}
	}

	p.Level = newLevel
	p.Experience = newExp

	res := domain.LevelResult{
		LevelUp:    len(gained) > 0,
		Level:      newLevel,
		Experience: newExp,
		Rewards:    rewards,
	}

	var events []domain.Event
	if res.LevelUp {
		levelUpsTotal.Inc()
		events = append(events, domain.Event{
			Kind:   domain.EventLevelUp,
			UserID: p.UserID,
			Level:  newLevel,
			At:     e.now(),
		})
		granted, err := e.scanAchievements(ctx, r, p)
		if err != nil {
			return domain.LevelResult{}, nil, err
		}
		events = append(events, granted...)
	}
	return res, events, nil
}

// applyReward dispatches on the closed reward enum. Unlock rewards are
// idempotent; a duplicate grant is a no-op, never an error.
func (e *Engine) applyReward(ctx context.Context, r *repos, p *domain.Player, rw domain.Reward) error {
	switch rw.Kind {
	case domain.RewardMainCurrency:
		_, err := e.credit(ctx, r, p.UserID, domain.MainCurrency, rw.Amount, nil)
		return err

	case domain.RewardLocationCurrency:
		loc, err := e.cat.Location(rw.TargetID)
		if err != nil {
			return fmt.Errorf("reward location %s: %w", rw.TargetID, err)
		}
		capacity, err := e.storageCapacity(ctx, r, p.UserID, loc)
		if err != nil {
			return err
		}
		_, err = e.credit(ctx, r, p.UserID, loc.CurrencyID, rw.Amount, &capacity)
		return err

	case domain.RewardCurrency:
		// a currency scoped to a location keeps its storage cap even when
		// granted as a reward
		if loc, ok := e.cat.LocationForCurrency(rw.CurrencyID); ok {
			capacity, err := e.storageCapacity(ctx, r, p.UserID, loc)
			if err != nil {
				return err
			}
			_, err = e.credit(ctx, r, p.UserID, rw.CurrencyID, rw.Amount, &capacity)
			return err
		}
		_, err := e.credit(ctx, r, p.UserID, rw.CurrencyID, rw.Amount, nil)
		return err

	case domain.RewardUnlockTool:
		tool, err := e.cat.Tool(rw.TargetID)
		if err != nil {
			return fmt.Errorf("reward tool %s: %w", rw.TargetID, err)
		}
		equipped, err := r.tools.HasEquippedForCharacter(ctx, p.UserID, tool.CharacterID)
		if err != nil {
			return err
		}
		_, err = r.tools.Insert(ctx, p.UserID, tool.ID, tool.CharacterID, !equipped)
		return err

	case domain.RewardUnlockLocation:
		loc, err := e.cat.Location(rw.TargetID)
		if err != nil {
			return fmt.Errorf("reward location %s: %w", rw.TargetID, err)
		}
		if err := r.unlocks.UnlockLocation(ctx, p.UserID, loc.ID); err != nil {
			return err
		}
		return r.ledger.EnsureAccount(ctx, p.UserID, loc.CurrencyID)

	case domain.RewardEnergy:
		p.MaxEnergy += int(rw.Amount.IntPart())
		return nil
	}
	return fmt.Errorf("unknown reward kind %q", rw.Kind)
}

// AddExperience grants experience directly, running the full cascade.
func (e *Engine) AddExperience(ctx context.Context, userID string, amount int64) (domain.LevelResult, error) {
	var res domain.LevelResult
	err := e.withPlayer(ctx, userID, func(r *repos, p *domain.Player) ([]domain.Event, error) {
		var events []domain.Event
		var err error
		res, events, err = e.applyExperience(ctx, r, p, amount)
		if err != nil {
			return nil, err
		}
		return events, r.players.Update(ctx, p)
	})
	return res, err
}
