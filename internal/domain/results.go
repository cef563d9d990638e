package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TapResult reports everything a single tap produced.
type TapResult struct {
	LocationGain decimal.Decimal `json:"location_gain"`
	MainGain     decimal.Decimal `json:"main_gain"`
	StorageFull  bool            `json:"storage_full"`
	LevelUp      bool            `json:"level_up"`
	NewLevel     int             `json:"new_level"`
	Rewards      []Reward        `json:"rewards,omitempty"`
	EnergyLeft   int             `json:"energy_left"`
}

// CollectedCurrency is the per-currency outcome of an income collection.
type CollectedCurrency struct {
	CurrencyID  CurrencyID      `json:"currency_id"`
	Collected   decimal.Decimal `json:"collected"`
	Remaining   decimal.Decimal `json:"remaining"`
	StorageFull bool            `json:"storage_full"`
}

type CollectResult struct {
	Currencies []CollectedCurrency `json:"currencies"`
}

// LevelResult is the outcome of an experience grant.
type LevelResult struct {
	LevelUp    bool     `json:"level_up"`
	Level      int      `json:"level"`
	Experience int64    `json:"experience"`
	Rewards    []Reward `json:"rewards,omitempty"`
}

// RankResult is the outcome of a season points update.
type RankResult struct {
	SeasonID      string `json:"season_id"`
	Points        int64  `json:"points"`
	RankID        int    `json:"rank_id"`
	HighestRankID int    `json:"highest_rank_id"`
	RankUp        bool   `json:"rank_up"`
}

// PendingIncomeView is a read-only projection of accrued income: stored
// pending plus what would accrue right now, without reconciling.
type PendingIncomeView struct {
	Currencies map[CurrencyID]decimal.Decimal `json:"currencies"`
}

// ProgressSnapshot is the full player view returned by a progress fetch.
type ProgressSnapshot struct {
	Player        Player                         `json:"player"`
	Balances      map[CurrencyID]decimal.Decimal `json:"balances"`
	PendingIncome map[CurrencyID]decimal.Decimal `json:"pending_income"`
	Tools         []ToolOwnership                `json:"tools"`
	Helpers       []HelperOwnership              `json:"helpers"`
	Locations     []string                       `json:"locations"`
	Achievements  []AchievementGrant             `json:"achievements"`
}

// EventKind tags notifications pushed through the sink.
type EventKind string

const (
	EventAchievementGranted EventKind = "achievement_granted"
	EventRankUp             EventKind = "rank_up"
	EventLevelUp            EventKind = "level_up"
)

// Event is a fire-and-forget notification; published only after the
// transaction that produced it commits.
type Event struct {
	Kind          EventKind `json:"kind"`
	UserID        string    `json:"user_id"`
	AchievementID string    `json:"achievement_id,omitempty"`
	RankID        int       `json:"rank_id,omitempty"`
	Level         int       `json:"level,omitempty"`
	At            time.Time `json:"at"`
}
