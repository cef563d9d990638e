package service

import (
	"context"
	"fmt"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/domain"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/game"
)

// UpdateRank sets the player's season points and re-derives the rank from
// the threshold table. Rank follows the points deterministically; there is
// no manual override path.
func (e *Engine) UpdateRank(ctx context.Context, userID, seasonID string, points int64) (domain.RankResult, error) {
	if _, err := e.cat.Season(seasonID); err != nil {
		return domain.RankResult{}, fmt.Errorf("season %s: %w", seasonID, domain.ErrNotFound)
	}

	var res domain.RankResult
	err := e.withPlayer(ctx, userID, func(r *repos, p *domain.Player) ([]domain.Event, error) {
		standing, err := r.seasons.Standing(ctx, userID, seasonID)
		if err != nil {
			return nil, err
		}
		if standing == nil {
			standing = &domain.SeasonStanding{UserID: userID, SeasonID: seasonID}
		}

		rank := game.RankFor(points, e.cat.Ranks())
		rankUp := rank.ID > standing.RankID

		standing.Points = points
		standing.RankID = rank.ID
		if rank.ID > standing.HighestRankID {
			standing.HighestRankID = rank.ID
		}
		if err := r.seasons.Upsert(ctx, standing); err != nil {
			return nil, err
		}

		// mirror the best rank ever into the profile cache and keep the
		// seasons-participated counter in step with the standings table
		if standing.HighestRankID > p.RankID {
			p.RankID = standing.HighestRankID
		}
		played, err := r.seasons.SeasonsPlayed(ctx, userID)
		if err != nil {
			return nil, err
		}
		p.SeasonsPlayed = played

		var events []domain.Event
		if rankUp {
			events = append(events, domain.Event{
				Kind:   domain.EventRankUp,
				UserID: userID,
				RankID: rank.ID,
				At:     e.now(),
			})
			granted, err := e.scanAchievements(ctx, r, p)
			if err != nil {
				return nil, err
			}
			events = append(events, granted...)
		}

		res = domain.RankResult{
			SeasonID:      seasonID,
			Points:        points,
			RankID:        standing.RankID,
			HighestRankID: standing.HighestRankID,
			RankUp:        rankUp,
		}
		return events, r.players.Update(ctx, p)
	})
	return res, err
}
