package service

import (
	"context"
	"fmt"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/game"
)

// refillEnergy lazily regenerates energy from the elapsed time since the
// last refill. Advances the refill timestamp only by the minutes actually
// credited so fractional time is never lost.
func (e *Engine) refillEnergy(p *domain.Player) {
	elapsed := e.now().Sub(p.LastEnergyRefillAt)
	energy, consumed := game.RefillEnergy(p.Energy, p.MaxEnergy, elapsed, e.cfg.EnergyPerMinute)
	if consumed > 0 {
		p.Energy = energy
		if p.Energy >= p.MaxEnergy {
			p.LastEnergyRefillAt = e.now()
		} else {
			p.LastEnergyRefillAt = p.LastEnergyRefillAt.Add(consumed)
		}
	}
}

// tapStats resolves the effective tap parameters: the equipped tool for the
// location's character, or the defined base values when nothing is equipped.
func (e *Engine) tapStats(ctx context.Context, r *repos, userID string, loc domain.Location) (game.TapStats, error) {
	owned, err := r.tools.EquippedForCharacter(ctx, userID, loc.CharacterID)
	if err != nil {
		return game.TapStats{}, err
	}
	if owned == nil {
		return game.BaseTapStats(), nil
	}
	tl, err := e.cat.ToolLevel(owned.ToolID, owned.Level)
	if err != nil {
		return game.TapStats{}, fmt.Errorf("tool %s level %d missing from catalog: %w", owned.ToolID, owned.Level, err)
	}
	return game.TapStats{
		Power:              tl.Power,
		MainCoinsPower:     tl.MainCoinsPower,
		LocationCoinsPower: tl.LocationCoinsPower,
	}, nil
}

// Tap is the primary action: spend one energy, earn location currency up to
// the storage cap, earn main currency uncapped, gain experience, and let
// the cascade run.
func (e *Engine) Tap(ctx context.Context, userID, locationID string) (domain.TapResult, error) {
	var res domain.TapResult
	err := e.withPlayer(ctx, userID, func(r *repos, p *domain.Player) ([]domain.Event, error) {
		e.refillEnergy(p)
		if p.Energy <= 0 {
			return nil, domain.ErrNoEnergy
		}

		loc, err := e.cat.Location(locationID)
		if err != nil {
			return nil, fmt.Errorf("location %s: %w", locationID, domain.ErrNotFound)
		}
		unlocked, err := r.unlocks.HasLocation(ctx, userID, locationID)
		if err != nil {
			return nil, err
		}
		if !unlocked {
			return nil, domain.ErrLocked
		}

		stats, err := e.tapStats(ctx, r, userID, loc)
		if err != nil {
			return nil, err
		}
		locationGain, mainGain := game.TapGains(stats)

		capacity, err := e.storageCapacity(ctx, r, userID, loc)
		if err != nil {
			return nil, err
		}
		credited, err := e.credit(ctx, r, userID, loc.CurrencyID, locationGain, &capacity)
		if err != nil {
			return nil, err
		}
		if _, err := e.credit(ctx, r, userID, domain.MainCurrency, mainGain, nil); err != nil {
			return nil, err
		}

		p.Energy--
		p.TotalTaps++
		p.TotalResources = p.TotalResources.Add(credited).Add(mainGain)

		lvl, events, err := e.applyExperience(ctx, r, p, e.cfg.TapExperience)
		if err != nil {
			return nil, err
		}
		// a tap can complete a tap-count achievement without a level-up;
		// applyExperience only scans when one occurred
		if !lvl.LevelUp {
			granted, err := e.scanAchievements(ctx, r, p)
			if err != nil {
				return nil, err
			}
			events = append(events, granted...)
		}

		tapsTotal.Inc()
		res = domain.TapResult{
			LocationGain: credited,
			MainGain:     mainGain,
			StorageFull:  credited.LessThan(locationGain),
			LevelUp:      lvl.LevelUp,
			NewLevel:     lvl.Level,
			Rewards:      lvl.Rewards,
			EnergyLeft:   p.Energy,
		}
		return events, r.players.Update(ctx, p)
	})
	return res, err
}
