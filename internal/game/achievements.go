package game

import "github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"

// PlayerStats is the snapshot achievement predicates evaluate against.
// Assembled by the engine inside the player's transaction.
type PlayerStats struct {
	Level           int
	RankID          int
	SeasonsPlayed   int
	LoginStreak     int
	DaysInactive    int
	TotalTaps       int64
	HelpersOwned    int
	MaxStorageLevel int
}

// ConditionMet evaluates a single achievement predicate. The switch is
// exhaustive over domain.ConditionKind; the catalog loader rejects unknown
// kinds before they can reach here.
func ConditionMet(a domain.Achievement, s PlayerStats) bool {
	switch a.Condition {
	case domain.CondLevel:
		return int64(s.Level) >= a.Threshold
	case domain.CondRank:
		return int64(s.RankID) >= a.Threshold
	case domain.CondSeasonsPlayed:
		return int64(s.SeasonsPlayed) >= a.Threshold
	case domain.CondLoginStreak:
		return int64(s.LoginStreak) >= a.Threshold
	case domain.CondDaysInactive:
		return int64(s.DaysInactive) >= a.Threshold
	case domain.CondTotalTaps:
		return s.TotalTaps >= a.Threshold
	case domain.CondHelpersOwned:
		return int64(s.HelpersOwned) >= a.Threshold
	case domain.CondMaxStorageLevel:
		return int64(s.MaxStorageLevel) >= a.Threshold
	}
	return false
}
