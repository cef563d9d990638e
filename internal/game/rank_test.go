package game

import (
	"testing"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"
)

func TestRankFor(t *testing.T) {
	ranks := []domain.Rank{
		{ID: 1, MinPoints: 0},
		{ID: 2, MinPoints: 100},
		{ID: 3, MinPoints: 300},
		{ID: 4, MinPoints: 600},
		{ID: 5, MinPoints: 1000},
		{ID: 6, MinPoints: 1500},
	}

	cases := []struct {
		points int64
		want   int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{1050, 5},
		{1500, 6},
		{999999, 6},
	}

	for _, tc := range cases {
		if got := RankFor(tc.points, ranks); got.ID != tc.want {
			t.Fatalf("RankFor(%d) = rank %d; want %d", tc.points, got.ID, tc.want)
		}
	}
}

func TestRankForEmptyTable(t *testing.T) {
	if got := RankFor(100, nil); got.ID != 0 {
		t.Fatalf("RankFor with empty table = %d; want zero rank", got.ID)
	}
}
