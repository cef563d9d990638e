package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Player is the per-user mutable progression row. Created lazily on first
// contact; never deleted by the engine.
type Player struct {
	UserID             string          `db:"user_id" json:"user_id"`
	Level              int             `db:"level" json:"level"`
	Experience         int64           `db:"experience" json:"experience"`
	Energy             int             `db:"energy" json:"energy"`
	MaxEnergy          int             `db:"max_energy" json:"max_energy"`
	LastEnergyRefillAt time.Time       `db:"last_energy_refill_at" json:"last_energy_refill_at"`
	LastLoginAt        time.Time       `db:"last_login_at" json:"last_login_at"`
	LoginStreak        int             `db:"login_streak" json:"login_streak"`
	RankID             int             `db:"rank_id" json:"rank_id"` // highest rank cache, mirrors season standing
	TotalTaps          int64           `db:"total_taps" json:"total_taps"`
	TotalResources     decimal.Decimal `db:"total_resources" json:"total_resources"`
	SeasonsPlayed      int             `db:"seasons_played" json:"seasons_played"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
}

// ToolOwnership is a purchased tool with its upgrade level. At most one tool
// per character is equipped.
type ToolOwnership struct {
	UserID   string `db:"user_id" json:"user_id"`
	ToolID   string `db:"tool_id" json:"tool_id"`
	Level    int    `db:"level" json:"level"`
	Equipped bool   `db:"equipped" json:"equipped"`
}

// HelperOwnership is a purchased helper. Once owned, a helper always earns
// idle income for its location's currency; there is no active toggle.
type HelperOwnership struct {
	UserID   string `db:"user_id" json:"user_id"`
	HelperID string `db:"helper_id" json:"helper_id"`
	Level    int    `db:"level" json:"level"`
}

// SeasonStanding tracks a player's points and derived rank within a season.
// RankID is a cache of the rank the points justify, never set independently.
type SeasonStanding struct {
	UserID        string `db:"user_id" json:"user_id"`
	SeasonID      string `db:"season_id" json:"season_id"`
	Points        int64  `db:"points" json:"points"`
	RankID        int    `db:"rank_id" json:"rank_id"`
	HighestRankID int    `db:"highest_rank_id" json:"highest_rank_id"`
}

// AchievementGrant is append-only; re-granting is a no-op enforced by a
// uniqueness constraint on (user_id, achievement_id).
type AchievementGrant struct {
	UserID        string    `db:"user_id" json:"user_id"`
	AchievementID string    `db:"achievement_id" json:"achievement_id"`
	UnlockedAt    time.Time `db:"unlocked_at" json:"unlocked_at"`
}
