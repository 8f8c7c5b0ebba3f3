package playoff

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/hoopsim/internal/models"
)

// TeamLookup resolves a team by ID
type TeamLookup func(ctx context.Context, teamID string) (*models.Team, error)

// GameResult is what a single simulated playoff game reports back
type GameResult struct {
	GameID   string
	WinnerID string
}

// GameSimulator plays one game of a series with home hosting away
type GameSimulator func(ctx context.Context, series models.PlayoffSeries, home, away *models.Team) (GameResult, error)

// homeGames marks which games of a best-of-seven the higher seed hosts (2-2-1-1-1)
var homeGames = map[int]bool{1: true, 2: true, 5: true, 7: true}

// HomeCourt returns the host and visitor for a game number starting at 1.
// Single-game series are always hosted by the higher seed.
func HomeCourt(s models.PlayoffSeries, gameNumber int) (home, away string) {
	if s.WinsNeeded == models.PlayInWinsNeeded || homeGames[gameNumber] {
		return s.HigherSeedTeamID, s.LowerSeedTeamID
	}
	return s.LowerSeedTeamID, s.HigherSeedTeamID
}

// SimulateNonUserSeries plays every series that does not involve userTeamID to
// completion and advances the bracket, repeating while new rounds open without
// a pending user series. Completed series are skipped, so an interrupted run
// can be resumed with the bracket it returned alongside its error.
func SimulateNonUserSeries(ctx context.Context, b *models.PlayoffBracket, userTeamID string, lookup TeamLookup, simulate GameSimulator) (*models.PlayoffBracket, error) {
	if b == nil {
		return nil, ErrNilBracket
	}
	if lookup == nil {
		return nil, ErrNilTeamLookup
	}
	if simulate == nil {
		return nil, ErrNilSimulator
	}

	next, _, err := Advance(b)
	if err != nil {
		return next, err
	}

	for next.CurrentRound != models.RoundComplete {
		played := false
		for _, s := range next.SeriesFor(next.CurrentRound) {
			if s.Complete || s.Involves(userTeamID) {
				continue
			}
			done, err := playOut(ctx, s, lookup, simulate)
			next, _ = next.WithSeries(done)
			if err != nil {
				return next, err
			}
			played = true
		}

		advanced, changed, err := Advance(next)
		if err != nil {
			return next, err
		}
		next = advanced
		if !played && !changed {
			break
		}
	}
	return next, nil
}

func playOut(ctx context.Context, s models.PlayoffSeries, lookup TeamLookup, simulate GameSimulator) (models.PlayoffSeries, error) {
	for !s.Complete {
		if err := ctx.Err(); err != nil {
			return s, err
		}

		homeID, awayID := HomeCourt(s, len(s.GameIDs)+1)
		home, err := lookup(ctx, homeID)
		if err != nil {
			return s, fmt.Errorf("lookup %s: %w", homeID, err)
		}
		away, err := lookup(ctx, awayID)
		if err != nil {
			return s, fmt.Errorf("lookup %s: %w", awayID, err)
		}

		res, err := simulate(ctx, s, home, away)
		if err != nil {
			return s, fmt.Errorf("simulate %s game %d: %w", s.ID, len(s.GameIDs)+1, err)
		}
		s, err = s.RecordGame(res.GameID, res.WinnerID)
		if err != nil {
			return s, fmt.Errorf("record %s: %w", s.ID, err)
		}
	}
	return s, nil
}
