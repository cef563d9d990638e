package catalog

import (
	"context"
	"fmt"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"

	"github.com/jackc/pgx/v5"
)

// queryer is the slice of pgx the loader needs; *pgxpool.Pool satisfies it.
type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Load reads the whole catalog from the static configuration tables.
// Unknown reward or condition kinds fail the load instead of surfacing
// later inside a player transaction; so does a connection dropping
// mid-read, which would otherwise truncate the catalog silently.
func Load(ctx context.Context, db queryer) (*Catalog, error) {
	var d Data

	rows, err := db.Query(ctx, `SELECT id, name FROM currencies`)
	if err != nil {
		return nil, fmt.Errorf("load currencies: %w", err)
	}
	for rows.Next() {
		var c domain.Currency
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			rows.Close()
			return nil, err
		}
		d.Currencies = append(d.Currencies, c)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load currencies: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT id, name, character_id, currency_id, unlock_level FROM locations`)
	if err != nil {
		return nil, fmt.Errorf("load locations: %w", err)
	}
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.CharacterID, &l.CurrencyID, &l.UnlockLevel); err != nil {
			rows.Close()
			return nil, err
		}
		d.Locations = append(d.Locations, l)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load locations: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT id, name, character_id, cost_currency_id, cost, unlock_level, max_level FROM tools`)
	if err != nil {
		return nil, fmt.Errorf("load tools: %w", err)
	}
	for rows.Next() {
		var t domain.Tool
		if err := rows.Scan(&t.ID, &t.Name, &t.CharacterID, &t.CostCurrency, &t.Cost, &t.UnlockLevel, &t.MaxLevel); err != nil {
			rows.Close()
			return nil, err
		}
		d.Tools = append(d.Tools, t)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load tools: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT tool_id, level, power, main_coins_power, location_coins_power, upgrade_cost FROM tool_levels`)
	if err != nil {
		return nil, fmt.Errorf("load tool levels: %w", err)
	}
	for rows.Next() {
		var tl domain.ToolLevel
		if err := rows.Scan(&tl.ToolID, &tl.Level, &tl.Power, &tl.MainCoinsPower, &tl.LocationCoinsPower, &tl.UpgradeCost); err != nil {
			rows.Close()
			return nil, err
		}
		d.ToolLevels = append(d.ToolLevels, tl)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load tool levels: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT id, name, location_id, currency_id, cost_currency_id, cost, max_level FROM helpers`)
	if err != nil {
		return nil, fmt.Errorf("load helpers: %w", err)
	}
	for rows.Next() {
		var h domain.Helper
		if err := rows.Scan(&h.ID, &h.Name, &h.LocationID, &h.CurrencyID, &h.CostCurrency, &h.Cost, &h.MaxLevel); err != nil {
			rows.Close()
			return nil, err
		}
		d.Helpers = append(d.Helpers, h)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load helpers: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT helper_id, level, income_per_hour, upgrade_cost FROM helper_levels`)
	if err != nil {
		return nil, fmt.Errorf("load helper levels: %w", err)
	}
	for rows.Next() {
		var hl domain.HelperLevel
		if err := rows.Scan(&hl.HelperID, &hl.Level, &hl.IncomePerHour, &hl.UpgradeCost); err != nil {
			rows.Close()
			return nil, err
		}
		d.HelperLevels = append(d.HelperLevels, hl)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load helper levels: %w", err)
	}

	levels := make(map[int]*domain.LevelDef)
	rows, err = db.Query(ctx, `SELECT level, exp_to_next FROM levels`)
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	for rows.Next() {
		var lv domain.LevelDef
		if err := rows.Scan(&lv.Level, &lv.ExpToNext); err != nil {
			rows.Close()
			return nil, err
		}
		levels[lv.Level] = &lv
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT level, kind, currency_id, amount, target_id FROM level_rewards ORDER BY level, id`)
	if err != nil {
		return nil, fmt.Errorf("load level rewards: %w", err)
	}
	for rows.Next() {
		var level int
		var r domain.Reward
		var kind, currency string
		if err := rows.Scan(&level, &kind, &currency, &r.Amount, &r.TargetID); err != nil {
			rows.Close()
			return nil, err
		}
		r.Kind = domain.RewardKind(kind)
		r.CurrencyID = domain.CurrencyID(currency)
		if !domain.ValidRewardKind(r.Kind) {
			rows.Close()
			return nil, fmt.Errorf("level %d: unknown reward kind %q", level, r.Kind)
		}
		lv, ok := levels[level]
		if !ok {
			rows.Close()
			return nil, fmt.Errorf("reward references unknown level %d", level)
		}
		lv.Rewards = append(lv.Rewards, r)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load level rewards: %w", err)
	}
	for _, lv := range levels {
		d.Levels = append(d.Levels, *lv)
	}

	rows, err = db.Query(ctx, `SELECT location_id, level, capacity, upgrade_cost FROM storage_levels`)
	if err != nil {
		return nil, fmt.Errorf("load storage levels: %w", err)
	}
	for rows.Next() {
		var sl domain.StorageLevel
		if err := rows.Scan(&sl.LocationID, &sl.Level, &sl.Capacity, &sl.UpgradeCost); err != nil {
			rows.Close()
			return nil, err
		}
		d.StorageLevels = append(d.StorageLevels, sl)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load storage levels: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT id, name, min_points FROM ranks ORDER BY min_points`)
	if err != nil {
		return nil, fmt.Errorf("load ranks: %w", err)
	}
	for rows.Next() {
		var r domain.Rank
		if err := rows.Scan(&r.ID, &r.Name, &r.MinPoints); err != nil {
			rows.Close()
			return nil, err
		}
		d.Ranks = append(d.Ranks, r)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load ranks: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT id, name, condition_type, threshold, reward_main FROM achievements`)
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.ID, &a.Name, &a.Condition, &a.Threshold, &a.RewardMain); err != nil {
			rows.Close()
			return nil, err
		}
		if !domain.ValidConditionKind(a.Condition) {
			rows.Close()
			return nil, fmt.Errorf("achievement %s: unknown condition %q", a.ID, a.Condition)
		}
		d.Achievements = append(d.Achievements, a)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT id, name FROM seasons`)
	if err != nil {
		return nil, fmt.Errorf("load seasons: %w", err)
	}
	for rows.Next() {
		var s domain.Season
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			rows.Close()
			return nil, err
		}
		d.Seasons = append(d.Seasons, s)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("load seasons: %w", err)
	}

	return New(d), nil
}

// closeRows surfaces an iteration error that rows.Next masks, so a dropped
// connection cannot truncate a table read into an apparent success.
func closeRows(rows pgx.Rows) error {
	rows.Close()
	return rows.Err()
}
