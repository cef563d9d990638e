package game

import "github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"

// RankFor picks the highest rank whose MinPoints <= points. Ranks must be
// sorted ascending by MinPoints; the first rank is the floor for any score.
func RankFor(points int64, ranks []domain.Rank) domain.Rank {
	if len(ranks) == 0 {
		return domain.Rank{}
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.MinPoints > points {
			break
		}
		best = r
	}
	return best
}
