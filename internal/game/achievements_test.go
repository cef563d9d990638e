package game

import (
	"testing"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"
)

func TestConditionMet(t *testing.T) {
	stats := PlayerStats{
		Level:           7,
		RankID:          3,
		SeasonsPlayed:   2,
		LoginStreak:     5,
		DaysInactive:    0,
		TotalTaps:       1000,
		HelpersOwned:    4,
		MaxStorageLevel: 2,
	}

	cases := []struct {
		name      string
		cond      domain.ConditionKind
		threshold int64
		want      bool
	}{
		{"level met", domain.CondLevel, 5, true},
		{"level not met", domain.CondLevel, 10, false},
		{"rank met", domain.CondRank, 3, true},
		{"seasons", domain.CondSeasonsPlayed, 3, false},
		{"streak", domain.CondLoginStreak, 5, true},
		{"inactive", domain.CondDaysInactive, 1, false},
		{"taps", domain.CondTotalTaps, 1000, true},
		{"helpers", domain.CondHelpersOwned, 5, false},
		{"storage", domain.CondMaxStorageLevel, 2, true},
		{"unknown kind", domain.ConditionKind("bogus"), 0, false},
	}

	for _, tc := range cases {
		a := domain.Achievement{ID: tc.name, Condition: tc.cond, Threshold: tc.threshold}
		if got := ConditionMet(a, stats); got != tc.want {
			t.Fatalf("%s: ConditionMet = %v; want %v", tc.name, got, tc.want)
		}
	}
}
