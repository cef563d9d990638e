package service

import (
	"context"
	"fmt"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"
)

// Shop operations share one shape: resolve the catalog item, check the
// precondition, debit the price, grant the item. A failed debit rejects the
// whole operation with nothing mutated.

func (e *Engine) BuyTool(ctx context.Context, userID, toolID string) error {
	tool, err := e.cat.Tool(toolID)
	if err != nil {
		return fmt.Errorf("tool %s: %w", toolID, domain.ErrNotFound)
	}
	return e.withPlayer(ctx, userID, func(r *repos, p *domain.Player) ([]domain.Event, error) {
		if p.Level < tool.UnlockLevel {
			return nil, domain.ErrLocked
		}
		if _, err := r.tools.Get(ctx, userID, toolID); err == nil {
			return nil, domain.ErrAlreadyOwned
		} else if err != domain.ErrNotFound {
			return nil, err
		}
		if err := e.debit(ctx, r, userID, tool.CostCurrency, tool.Cost); err != nil {
			return nil, err
		}
		equipped, err := r.tools.HasEquippedForCharacter(ctx, userID, tool.CharacterID)
		if err != nil {
			return nil, err
		}
		_, err = r.tools.Insert(ctx, userID, toolID, tool.CharacterID, !equipped)
		return nil, err
	})
}

func (e *Engine) UpgradeTool(ctx context.Context, userID, toolID string) error {
	tool, err := e.cat.Tool(toolID)
	if err != nil {
		return fmt.Errorf("tool %s: %w", toolID, domain.ErrNotFound)
	}
	return e.withPlayer(ctx, userID, func(r *repos, p *domain.Player) ([]domain.Event, error) {
		owned, err := r.tools.Get(ctx, userID, toolID)
		if err != nil {
			if err == domain.ErrNotFound {
				return nil, domain.ErrNotOwned
			}
			return nil, err
		}
		next := owned.Level + 1
		if next > tool.MaxLevel {
			return nil, domain.ErrMaxLevel
		}
		tl, err := e.cat.ToolLevel(toolID, next)
		if err != nil {
			return nil, fmt.Errorf("tool %s level %d missing from catalog: %w", toolID, next, err)
		}
		if err := e.debit(ctx, r, userID, tool.CostCurrency, tl.UpgradeCost); err != nil {
			return nil, err
		}
		return nil, r.tools.SetLevel(ctx, userID, toolID, next)
	})
}

func (e *Engine) EquipTool(ctx context.Context, userID, toolID string) error {
	tool, err := e.cat.Tool(toolID)
	if err != nil {
		return fmt.Errorf("tool %s: %w", toolID, domain.ErrNotFound)
	}
	return e.withPlayer(ctx, userID, func(r *repos, p *domain.Player) ([]domain.Event, error) {
		if _, err := r.tools.Get(ctx, userID, toolID); err != nil {
			if err == domain.ErrNotFound {
				return nil, domain.ErrNotOwned
			}
			return nil, err
		}
		return nil, r.tools.Equip(ctx, userID, toolID, tool.CharacterID)
	})
}

func (e *Engine) BuyHelper(ctx context.Context, userID, helperID string) error {
	helper, err := e.cat.Helper(helperID)
	if err != nil {
		return fmt.Errorf("helper %s: %w", helperID, domain.ErrNotFound)
	}
	return e.withPlayer(ctx, userID, func(r *repos, p *domain.Player) ([]domain.Event, error) {
		unlocked, err := r.unlocks.HasLocation(ctx, userID, helper.LocationID)
		if err != nil {
			return nil, err
		}
		if !unlocked {
			return nil, domain.ErrLocked
		}
		if _, err := r.helpers.Get(ctx, userID, helperID); err == nil {
			return nil, domain.ErrAlreadyOwned
		} else if err != domain.ErrNotFound {
			return nil, err
		}
		if err := e.debit(ctx, r, userID, helper.CostCurrency, helper.Cost); err != nil {
			return nil, err
		}
		if _, err := r.helpers.Insert(ctx, userID, helperID); err != nil {
			return nil, err
		}
		// a new helper can complete a helpers-owned achievement
		return e.scanAchievements(ctx, r, p)
	})
}

func (e *Engine) UpgradeHelper(ctx context.Context, userID, helperID string) error {
	helper, err := e.cat.Helper(helperID)
	if err != nil {
		return fmt.Errorf("helper %s: %w", helperID, domain.ErrNotFound)
	}
	return e.withPlayer(ctx, userID, func(r *repos, p *domain.Player) ([]domain.Event, error) {
		owned, err := r.helpers.Get(ctx, userID, helperID)
		if err != nil {
			if err == domain.ErrNotFound {
				return nil, domain.ErrNotOwned
			}
			return nil, err
		}
		next := owned.Level + 1
		if next > helper.MaxLevel {
			return nil, domain.ErrMaxLevel
		}
		hl, err := e.cat.HelperLevel(helperID, next)
		if err != nil {
			return nil, fmt.Errorf("helper %s level %d missing from catalog: %w", helperID, next, err)
		}
		if err := e.debit(ctx, r, userID, helper.CostCurrency, hl.UpgradeCost); err != nil {
			return nil, err
		}
		return nil, r.helpers.SetLevel(ctx, userID, helperID, next)
	})
}

// UpgradeStorage raises the storage cap of a location's currency to the
// next level. Paid in the location's own currency.
func (e *Engine) UpgradeStorage(ctx context.Context, userID, locationID string) error {
	loc, err := e.cat.Location(locationID)
	if err != nil {
		return fmt.Errorf("location %s: %w", locationID, domain.ErrNotFound)
	}
	return e.withPlayer(ctx, userID, func(r *repos, p *domain.Player) ([]domain.Event, error) {
		unlocked, err := r.unlocks.HasLocation(ctx, userID, locationID)
		if err != nil {
			return nil, err
		}
		if !unlocked {
			return nil, domain.ErrLocked
		}

		level := 1
		if limit, err := r.storage.Get(ctx, userID, locationID); err != nil {
			return nil, err
		} else if limit != nil {
			level = limit.Level
		}

		next, err := e.cat.StorageLevel(locationID, level+1)
		if err != nil {
			return nil, domain.ErrMaxLevel
		}
		if err := e.debit(ctx, r, userID, loc.CurrencyID, next.UpgradeCost); err != nil {
			return nil, err
		}
		if err := r.storage.Upsert(ctx, userID, locationID, loc.CurrencyID, next.Level, next.Capacity); err != nil {
			return nil, err
		}
		return e.scanAchievements(ctx, r, p)
	})
}
