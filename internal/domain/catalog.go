package domain

import "github.com/shopspring/decimal"

// Static game configuration: read-only at request time, loaded once at
// startup. Referenced from player rows by id.

type Currency struct {
	ID   CurrencyID `db:"id" json:"id"`
	Name string     `db:"name" json:"name"`
}

type Location struct {
	ID          string     `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	CharacterID string     `db:"character_id" json:"character_id"`
	CurrencyID  CurrencyID `db:"currency_id" json:"currency_id"`
	UnlockLevel int        `db:"unlock_level" json:"unlock_level"`
}

type Tool struct {
	ID           string          `db:"id" json:"id"`
	Name         string          `db:"name" json:"name"`
	CharacterID  string          `db:"character_id" json:"character_id"`
	CostCurrency CurrencyID      `db:"cost_currency_id" json:"cost_currency_id"`
	Cost         decimal.Decimal `db:"cost" json:"cost"`
	UnlockLevel  int             `db:"unlock_level" json:"unlock_level"`
	MaxLevel     int             `db:"max_level" json:"max_level"`
}

// ToolLevel holds the tap stats a tool grants at a given upgrade level.
type ToolLevel struct {
	ToolID             string          `db:"tool_id" json:"tool_id"`
	Level              int             `db:"level" json:"level"`
	Power              decimal.Decimal `db:"power" json:"power"`
	MainCoinsPower     decimal.Decimal `db:"main_coins_power" json:"main_coins_power"`
	LocationCoinsPower decimal.Decimal `db:"location_coins_power" json:"location_coins_power"`
	UpgradeCost        decimal.Decimal `db:"upgrade_cost" json:"upgrade_cost"`
}

type Helper struct {
	ID           string          `db:"id" json:"id"`
	Name         string          `db:"name" json:"name"`
	LocationID   string          `db:"location_id" json:"location_id"`
	CurrencyID   CurrencyID      `db:"currency_id" json:"currency_id"`
	CostCurrency CurrencyID      `db:"cost_currency_id" json:"cost_currency_id"`
	Cost         decimal.Decimal `db:"cost" json:"cost"`
	MaxLevel     int             `db:"max_level" json:"max_level"`
}

// HelperLevel holds the passive income rate at a given helper level.
type HelperLevel struct {
	HelperID      string          `db:"helper_id" json:"helper_id"`
	Level         int             `db:"level" json:"level"`
	IncomePerHour decimal.Decimal `db:"income_per_hour" json:"income_per_hour"`
	UpgradeCost   decimal.Decimal `db:"upgrade_cost" json:"upgrade_cost"`
}

// LevelDef is one step of the experience ladder. ExpToNext is the experience
// required to advance from Level to Level+1; the top level has no successor.
type LevelDef struct {
	Level     int      `db:"level" json:"level"`
	ExpToNext int64    `db:"exp_to_next" json:"exp_to_next"`
	Rewards   []Reward `json:"rewards,omitempty"`
}

// StorageLevel defines the capacity and upgrade price of a location's
// storage at a given level.
type StorageLevel struct {
	LocationID  string          `db:"location_id" json:"location_id"`
	Level       int             `db:"level" json:"level"`
	Capacity    decimal.Decimal `db:"capacity" json:"capacity"`
	UpgradeCost decimal.Decimal `db:"upgrade_cost" json:"upgrade_cost"`
}

type Rank struct {
	ID        int    `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	MinPoints int64  `db:"min_points" json:"min_points"`
}

type Season struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// RewardKind is the closed set of reward types a level can grant.
type RewardKind string

const (
	RewardMainCurrency     RewardKind = "main_currency"
	RewardLocationCurrency RewardKind = "location_currency"
	RewardCurrency         RewardKind = "currency"
	RewardUnlockTool       RewardKind = "unlock_tool"
	RewardUnlockLocation   RewardKind = "unlock_location"
	RewardEnergy           RewardKind = "energy"
)

// ValidRewardKind reports whether k is a member of the closed set. Catalog
// loading rejects anything else.
func ValidRewardKind(k RewardKind) bool {
	switch k {
	case RewardMainCurrency, RewardLocationCurrency, RewardCurrency,
		RewardUnlockTool, RewardUnlockLocation, RewardEnergy:
		return true
	}
	return false
}

type Reward struct {
	Kind       RewardKind      `db:"kind" json:"kind"`
	CurrencyID CurrencyID      `db:"currency_id" json:"currency_id,omitempty"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	TargetID   string          `db:"target_id" json:"target_id,omitempty"`
}

// ConditionKind is the closed set of achievement predicates.
type ConditionKind string

const (
	CondLevel           ConditionKind = "level"
	CondRank            ConditionKind = "rank"
	CondSeasonsPlayed   ConditionKind = "seasons_played"
	CondLoginStreak     ConditionKind = "login_streak"
	CondDaysInactive    ConditionKind = "days_inactive"
	CondTotalTaps       ConditionKind = "total_taps"
	CondHelpersOwned    ConditionKind = "helpers_owned"
	CondMaxStorageLevel ConditionKind = "max_storage_level"
)

func ValidConditionKind(k ConditionKind) bool {
	switch k {
	case CondLevel, CondRank, CondSeasonsPlayed, CondLoginStreak,
		CondDaysInactive, CondTotalTaps, CondHelpersOwned, CondMaxStorageLevel:
		return true
	}
	return false
}

type Achievement struct {
	ID         string          `db:"id" json:"id"`
	Name       string          `db:"name" json:"name"`
	Condition  ConditionKind   `db:"condition_type" json:"condition_type"`
	Threshold  int64           `db:"threshold" json:"threshold"`
	RewardMain decimal.Decimal `db:"reward_main" json:"reward_main"`
}
